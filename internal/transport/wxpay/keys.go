package wxpay

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// LoadPrivateKey разбирает PEM блок PKCS#8 "PRIVATE KEY" с RSA ключом.
func LoadPrivateKey(privateKeyStr string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(privateKeyStr))
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("decode private key: %w", ErrInvalidPEM)
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %s", err.Error())
	}
	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key: %w", ErrNotRSAKey)
	}
	return privateKey, nil
}

// LoadPublicKey разбирает PEM блок PKIX "PUBLIC KEY" с RSA ключом.
func LoadPublicKey(publicKeyStr string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyStr))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("decode public key: %w", ErrInvalidPEM)
	}
	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %s", err.Error())
	}
	publicKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key: %w", ErrNotRSAKey)
	}
	return publicKey, nil
}

func LoadPrivateKeyWithPath(path string) (*rsa.PrivateKey, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key %s: %w", path, err)
	}
	return LoadPrivateKey(string(content))
}

func LoadPublicKeyWithPath(path string) (*rsa.PublicKey, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key %s: %w", path, err)
	}
	return LoadPublicKey(string(content))
}
