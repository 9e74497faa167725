package hashio

import (
	"bytes"
	"crypto/md5" //nolint
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"strings"
)

const size = 512

// Hasher returns a fresh hash.Hash for every digest
type Hasher func() hash.Hash

var ErrHashFuncNotFound = errors.New("hash func not found")

func MD5() Hasher {
	return md5.New
}

func SHA1() Hasher {
	return sha1.New
}

func SHA256() Hasher {
	return sha256.New
}

// ParseHasher maps a flag value to a Hasher. The empty name selects MD5
func ParseHasher(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "md5":
		return MD5(), nil
	case "sha1":
		return SHA1(), nil
	case "sha256":
		return SHA256(), nil
	default:
		return nil, fmt.Errorf("%w: %q, variants: md5, sha1, sha256", ErrHashFuncNotFound, name)
	}
}

// ReadAll reads in blocks by buf size and hashes
func ReadAll(r io.Reader, hasher hash.Hash) ([]byte, error) {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("read: %w", err)
		}
	}

	return hasher.Sum(nil), nil
}

// ReadFile streams the file from fsys through a hash from hasher
func ReadFile(fsys fs.FS, fileName string, hasher Hasher) ([]byte, error) {
	if hasher == nil {
		return nil, ErrHashFuncNotFound
	}

	f, err := fsys.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", fileName, err)
	}
	defer f.Close()

	sum, err := ReadAll(f, hasher())
	if err != nil {
		return nil, fmt.Errorf("hash file %s: %w", fileName, err)
	}

	return sum, nil
}

// Equal reports whether the file in fsys has the same digest as content. A missing file is not equal
func Equal(fsys fs.FS, fileName string, content []byte, hasher Hasher) (bool, error) {
	if hasher == nil {
		return false, ErrHashFuncNotFound
	}

	oldSum, err := ReadFile(fsys, fileName, hasher)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	newSum, err := ReadAll(bytes.NewReader(content), hasher())
	if err != nil {
		return false, err
	}

	return bytes.Equal(oldSum, newSum), nil
}
