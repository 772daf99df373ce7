package uploads

// Image is a raw uploaded file as received from a multipart form
type Image struct {
	Data        []byte
	ContentType string
}

// Storage folders, one per entity kind
const (
	FolderCategories     = "myvegiz/categories"
	FolderSubCategories  = "myvegiz/sub-categories"
	FolderMainCategories = "myvegiz/main-categories"
	FolderProducts       = "myvegiz/products"
	FolderSliders        = "myvegiz/sliders"
	FolderProfiles       = "myvegiz/profiles"
)
