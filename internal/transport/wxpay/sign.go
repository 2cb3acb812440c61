package wxpay

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"
)

const (
	authorizationSchema = "WECHATPAY2-SHA256-RSA2048"

	headerTimestamp = "Wechatpay-Timestamp"
	headerNonce     = "Wechatpay-Nonce"
	headerSignature = "Wechatpay-Signature"
	headerSerial    = "Wechatpay-Serial"
	headerRequestID = "Request-Id"

	nonceLength       = 32
	nonceSymbols      = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxTimestampDrift = 5 * time.Minute
)

// GenerateNonce возвращает случайную строку из 32 символов [0-9a-zA-Z].
func GenerateNonce() (string, error) {
	buf := make([]byte, nonceLength)
	limit := big.NewInt(int64(len(nonceSymbols)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate nonce: %s", err.Error())
		}
		buf[i] = nonceSymbols[n.Int64()]
	}
	return string(buf), nil
}

// SignSHA256WithRSA подписывает source по PKCS#1 v1.5 поверх SHA-256 и возвращает подпись в base64.
func SignSHA256WithRSA(source string, privateKey *rsa.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", fmt.Errorf("sign: %w", ErrNotRSAKey)
	}
	hashed := sha256.Sum256([]byte(source))
	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return "", fmt.Errorf("sign: %s", err.Error())
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

func VerifySHA256WithRSA(source string, signature string, publicKey *rsa.PublicKey) error {
	if publicKey == nil {
		return fmt.Errorf("verify: %w", ErrNotRSAKey)
	}
	sigBytes, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("verify: %w", ErrInvalidSignature)
	}
	hashed := sha256.Sum256([]byte(source))
	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], sigBytes); err != nil {
		return fmt.Errorf("verify: %w", ErrInvalidSignature)
	}
	return nil
}

// BuildAuthorization собирает заголовок Authorization запроса к API мерчанта. path должен включать query string,
// если она есть.
func BuildAuthorization(
	mchID, certificateSerialNo string,
	privateKey *rsa.PrivateKey,
	method, path string,
	body []byte,
	now time.Time,
) (string, error) {
	nonce, err := GenerateNonce()
	if err != nil {
		return "", err
	}
	timestamp := now.Unix()
	message := fmt.Sprintf("%s\n%s\n%d\n%s\n%s\n", method, path, timestamp, nonce, body)
	signature, err := SignSHA256WithRSA(message, privateKey)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		`%s mchid="%s",nonce_str="%s",timestamp="%d",serial_no="%s",signature="%s"`,
		authorizationSchema, mchID, nonce, timestamp, certificateSerialNo, signature,
	), nil
}

// ValidateResponse проверяет подпись из заголовков Wechatpay-* ответа или уведомления.
func ValidateResponse(
	publicKeyID string,
	publicKey *rsa.PublicKey,
	header http.Header,
	body []byte,
	now time.Time,
) error {
	timestampStr := header.Get(headerTimestamp)
	nonce := header.Get(headerNonce)
	signature := header.Get(headerSignature)
	serial := header.Get(headerSerial)
	requestID := header.Get(headerRequestID)

	if timestampStr == "" || nonce == "" || signature == "" || serial == "" {
		return fmt.Errorf("request id %q: %w", requestID, ErrMissingSignature)
	}
	if serial != publicKeyID {
		return fmt.Errorf("request id %q, serial %q: %w", requestID, serial, ErrSerialMismatch)
	}

	timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
	if err != nil {
		return fmt.Errorf("request id %q, timestamp %q: %w", requestID, timestampStr, ErrTimestampExpired)
	}
	drift := now.Sub(time.Unix(timestamp, 0))
	if drift > maxTimestampDrift || drift < -maxTimestampDrift {
		return fmt.Errorf("request id %q, timestamp %d: %w", requestID, timestamp, ErrTimestampExpired)
	}

	message := fmt.Sprintf("%s\n%s\n%s\n", timestampStr, nonce, body)
	if err := VerifySHA256WithRSA(message, signature, publicKey); err != nil {
		return fmt.Errorf("request id %q: %w", requestID, err)
	}
	return nil
}
