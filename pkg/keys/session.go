package keys

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	hashKeyLen  = 64 // HMAC-SHA256 подпись cookie
	blockKeyLen = 32 // AES-256 шифрование cookie

	hashKeyInfo  = "gacha session hash key"
	blockKeyInfo = "gacha session block key"
)

// DeriveSessionKeys выводит ключ подписи и ключ шифрования cookie из одного секрета
func DeriveSessionKeys(secret []byte) (hashKey, blockKey []byte, err error) {
	if len(secret) == 0 {
		return nil, nil, errors.New("empty session secret")
	}

	hashKey, err = derive(secret, hashKeyInfo, hashKeyLen)
	if err != nil {
		return nil, nil, err
	}

	blockKey, err = derive(secret, blockKeyInfo, blockKeyLen)
	if err != nil {
		return nil, nil, err
	}

	return hashKey, blockKey, nil
}

func derive(secret []byte, info string, n int) ([]byte, error) {
	key := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		return nil, err
	}
	return key, nil
}
