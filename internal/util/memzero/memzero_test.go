package memzero_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shopadmin/internal/util/memzero"
)

func TestBytes(t *testing.T) {
	b := []byte("hunter2")
	memzero.Bytes(b)
	require.Equal(t, make([]byte, 7), b)

	memzero.Bytes(nil)
}
