package wxpay

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testAppID       = "wxb9f4f763e5d4a6de"
	testMchID       = "1368139500"
	testSerialNo    = "5157F09EFDC096DE15EBE81A47057A7232F1B8E1"
	testPublicKeyID = "PUB_KEY_ID_0113681395002025"
	testAPIv3Key    = "0123456789abcdef0123456789abcdef"
)

// testKeys возвращает пары ключей мерчанта и платформы.
func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()
	merchantKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	platformKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return merchantKey, platformKey
}

func testMerchant(merchantKey, platformKey *rsa.PrivateKey) *Merchant {
	return &Merchant{
		AppID:               testAppID,
		MchID:               testMchID,
		CertificateSerialNo: testSerialNo,
		PrivateKey:          merchantKey,
		PublicKeyID:         testPublicKeyID,
		PublicKey:           &platformKey.PublicKey,
		APIv3Key:            testAPIv3Key,
	}
}

// signHeaders формирует заголовки Wechatpay-*, которые платформа добавляет к ответу или колбэку.
func signHeaders(t *testing.T, platformKey *rsa.PrivateKey, body []byte, ts time.Time) http.Header {
	t.Helper()
	nonce, err := GenerateNonce()
	require.NoError(t, err)
	timestamp := strconv.FormatInt(ts.Unix(), 10)
	signature, err := SignSHA256WithRSA(fmt.Sprintf("%s\n%s\n%s\n", timestamp, nonce, body), platformKey)
	require.NoError(t, err)

	header := make(http.Header)
	header.Set(headerTimestamp, timestamp)
	header.Set(headerNonce, nonce)
	header.Set(headerSignature, signature)
	header.Set(headerSerial, testPublicKeyID)
	header.Set(headerRequestID, "08F78BB5AF0610D302A5392CBF5B8A0C")
	return header
}

func encryptResource(t *testing.T, key, nonce, associatedData string, plain []byte) string {
	t.Helper()
	block, err := aes.NewCipher([]byte(key))
	require.NoError(t, err)
	gcm, err := cipher.NewGCMWithNonceSize(block, len(nonce))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(gcm.Seal(nil, []byte(nonce), plain, []byte(associatedData)))
}

func encodePrivateKey(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func encodePublicKey(t *testing.T, key *rsa.PublicKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}
