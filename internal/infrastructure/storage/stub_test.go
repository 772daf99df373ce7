package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubImageStorage_Upload(t *testing.T) {
	stub := NewStubImageStorage()

	url, err := stub.Upload(context.Background(), "myvegiz/categories/a.png", []byte{1, 2, 3}, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/myvegiz/categories/a.png", url)

	data, ok := stub.Object("myvegiz/categories/a.png")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.Equal(t, 1, stub.Len())
}

func TestStubImageStorage_EmptyKey(t *testing.T) {
	stub := NewStubImageStorage()

	_, err := stub.Upload(context.Background(), "", []byte{1}, "image/png")
	assert.Error(t, err)
}

func TestStubImageStorage_CopiesData(t *testing.T) {
	stub := NewStubImageStorage()

	src := []byte{1, 2, 3}
	_, err := stub.Upload(context.Background(), "k", src, "image/png")
	require.NoError(t, err)

	src[0] = 9
	data, _ := stub.Object("k")
	assert.Equal(t, byte(1), data[0])
}
