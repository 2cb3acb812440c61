package wxpay

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	apiV3KeyLength    = 32
	resourceAlgorithm = "AEAD_AES_256_GCM"
)

// DecryptResource расшифровывает ресурс уведомления AEAD_AES_256_GCM ключом APIv3 мерчанта.
func DecryptResource(apiV3Key, associatedData, nonce, ciphertext string) ([]byte, error) {
	key := []byte(apiV3Key)
	if len(key) != apiV3KeyLength {
		return nil, ErrInvalidAPIv3Key
	}

	ct, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", ErrResourceDecryption)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %s", err.Error())
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, len(nonce))
	if err != nil {
		return nil, fmt.Errorf("new gcm: %s", err.Error())
	}

	plain, err := gcm.Open(nil, []byte(nonce), ct, []byte(associatedData))
	if err != nil {
		return nil, fmt.Errorf("open: %w", ErrResourceDecryption)
	}
	return plain, nil
}

// ParseNotification проверяет подпись колбэка перевода и возвращает расшифрованный счёт.
func (c *Client) ParseNotification(header http.Header, body []byte) (*Notification, *Bill, error) {
	if err := ValidateResponse(
		c.merchant.PublicKeyID, c.merchant.PublicKey, header, body, c.now(),
	); err != nil {
		return nil, nil, fmt.Errorf("parse notification: %w", err)
	}

	var notification Notification
	if err := json.Unmarshal(body, &notification); err != nil {
		return nil, nil, fmt.Errorf("parse notification body: %s", err.Error())
	}
	if notification.Resource.Algorithm != resourceAlgorithm {
		return nil, nil, fmt.Errorf("parse notification %s: %w", notification.ID, ErrUnsupportedCipher)
	}

	plain, err := DecryptResource(
		c.merchant.APIv3Key,
		notification.Resource.AssociatedData,
		notification.Resource.Nonce,
		notification.Resource.Ciphertext,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("parse notification %s: %w", notification.ID, err)
	}

	var bill Bill
	if err := json.Unmarshal(plain, &bill); err != nil {
		return nil, nil, fmt.Errorf("parse notification %s resource: %s", notification.ID, err.Error())
	}
	return &notification, &bill, nil
}
