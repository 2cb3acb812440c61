package wxpay

import (
	"crypto/rsa"
	"fmt"
)

// Merchant идентификаторы и ключи мерчанта для работы с WeChat Pay.
type Merchant struct {
	AppID               string
	MchID               string
	CertificateSerialNo string
	PrivateKey          *rsa.PrivateKey
	PublicKeyID         string
	PublicKey           *rsa.PublicKey
	APIv3Key            string
}

type MerchantFiles struct {
	AppID               string
	MchID               string
	CertificateSerialNo string
	PrivateKeyPath      string
	PublicKeyID         string
	PublicKeyPath       string
	APIv3Key            string
}

// LoadMerchant читает файлы ключей, указанные в files.
func LoadMerchant(files MerchantFiles) (*Merchant, error) {
	if len(files.APIv3Key) != apiV3KeyLength {
		return nil, ErrInvalidAPIv3Key
	}
	privateKey, err := LoadPrivateKeyWithPath(files.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("load merchant: %w", err)
	}
	publicKey, err := LoadPublicKeyWithPath(files.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("load merchant: %w", err)
	}
	return &Merchant{
		AppID:               files.AppID,
		MchID:               files.MchID,
		CertificateSerialNo: files.CertificateSerialNo,
		PrivateKey:          privateKey,
		PublicKeyID:         files.PublicKeyID,
		PublicKey:           publicKey,
		APIv3Key:            files.APIv3Key,
	}, nil
}
