package binary

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Offset-based serialization helpers for program account records. All
// integers are little-endian. Strings are length-prefixed with a uint32.
//
// Putters assume the destination buffer was sized up front and write at
// *offset. Getters bounds check and return an error, since several
// records contain variable-length fields.

const DiscriminatorSize = 8

var ErrUnexpectedEndOfData = errors.New("unexpected end of account data")

func PutDiscriminator(dst []byte, v []byte, offset *int) {
	copy(dst[*offset:], v[:DiscriminatorSize])
	*offset += DiscriminatorSize
}

func PutKey(dst []byte, v ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], v)
	*offset += ed25519.PublicKeySize
}

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}

func PutUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func PutInt64(dst []byte, v int64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], uint64(v))
	*offset += 8
}

func PutBool(dst []byte, v bool, offset *int) {
	if v {
		dst[*offset] = 1
	} else {
		dst[*offset] = 0
	}
	*offset += 1
}

func PutString(dst []byte, v string, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], uint32(len(v)))
	copy(dst[*offset+4:], v)
	*offset += 4 + len(v)
}

func PutOptionalInt64(dst []byte, v *int64, offset *int) {
	if v != nil {
		dst[*offset] = 1
		binary.LittleEndian.PutUint64(dst[*offset+1:], uint64(*v))
	}
	*offset += 9
}

func GetDiscriminator(src []byte, dst *[]byte, offset *int) error {
	if len(src) < *offset+DiscriminatorSize {
		return ErrUnexpectedEndOfData
	}
	*dst = make([]byte, DiscriminatorSize)
	copy(*dst, src[*offset:])
	*offset += DiscriminatorSize
	return nil
}

func GetKey(src []byte, dst *ed25519.PublicKey, offset *int) error {
	if len(src) < *offset+ed25519.PublicKeySize {
		return ErrUnexpectedEndOfData
	}
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
	return nil
}

func GetUint8(src []byte, dst *uint8, offset *int) error {
	if len(src) < *offset+1 {
		return ErrUnexpectedEndOfData
	}
	*dst = src[*offset]
	*offset += 1
	return nil
}

func GetUint32(src []byte, dst *uint32, offset *int) error {
	if len(src) < *offset+4 {
		return ErrUnexpectedEndOfData
	}
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
	return nil
}

func GetUint64(src []byte, dst *uint64, offset *int) error {
	if len(src) < *offset+8 {
		return ErrUnexpectedEndOfData
	}
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
	return nil
}

func GetInt64(src []byte, dst *int64, offset *int) error {
	if len(src) < *offset+8 {
		return ErrUnexpectedEndOfData
	}
	*dst = int64(binary.LittleEndian.Uint64(src[*offset:]))
	*offset += 8
	return nil
}

func GetBool(src []byte, dst *bool, offset *int) error {
	if len(src) < *offset+1 {
		return ErrUnexpectedEndOfData
	}
	*dst = src[*offset] == 1
	*offset += 1
	return nil
}

func GetString(src []byte, dst *string, offset *int) error {
	if len(src) < *offset+4 {
		return ErrUnexpectedEndOfData
	}
	length := int(binary.LittleEndian.Uint32(src[*offset:]))
	if len(src) < *offset+4+length {
		return ErrUnexpectedEndOfData
	}
	*dst = string(src[*offset+4 : *offset+4+length])
	*offset += 4 + length
	return nil
}

func GetOptionalInt64(src []byte, dst **int64, offset *int) error {
	if len(src) < *offset+9 {
		return ErrUnexpectedEndOfData
	}
	if src[*offset] == 1 {
		val := int64(binary.LittleEndian.Uint64(src[*offset+1:]))
		*dst = &val
	} else {
		*dst = nil
	}
	*offset += 9
	return nil
}

// StringSize returns the serialized size of a length-prefixed string.
func StringSize(v string) int {
	return 4 + len(v)
}
