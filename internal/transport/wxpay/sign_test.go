package wxpay

import (
	"crypto/rsa"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SignTestSuite struct {
	suite.Suite
	merchantKey *rsa.PrivateKey
	platformKey *rsa.PrivateKey
}

func TestSignSuite(t *testing.T) {
	suite.Run(t, new(SignTestSuite))
}

func (s *SignTestSuite) SetupSuite() {
	s.merchantKey, s.platformKey = testKeys(s.T())
}

func (s *SignTestSuite) TestGenerateNonce() {
	re := regexp.MustCompile(`^[0-9a-zA-Z]{32}$`)
	first, err := GenerateNonce()
	s.Require().NoError(err)
	second, err := GenerateNonce()
	s.Require().NoError(err)

	s.Regexp(re, first)
	s.Regexp(re, second)
	s.NotEqual(first, second)
}

func (s *SignTestSuite) TestSignVerify() {
	signature, err := SignSHA256WithRSA("message", s.merchantKey)
	s.Require().NoError(err)

	s.Require().NoError(VerifySHA256WithRSA("message", signature, &s.merchantKey.PublicKey))
	s.Require().ErrorIs(VerifySHA256WithRSA("tampered", signature, &s.merchantKey.PublicKey), ErrInvalidSignature)
	s.Require().ErrorIs(VerifySHA256WithRSA("message", "%%%", &s.merchantKey.PublicKey), ErrInvalidSignature)
}

func (s *SignTestSuite) TestBuildAuthorization() {
	now := time.Unix(1554208460, 0)
	body := []byte(`{"out_bill_no":"T1"}`)

	header, err := BuildAuthorization(
		testMchID, testSerialNo, s.merchantKey, "POST", RouteTransferBills, body, now,
	)
	s.Require().NoError(err)

	re := regexp.MustCompile(
		`^WECHATPAY2-SHA256-RSA2048 mchid="(\d+)",nonce_str="(\w{32})",timestamp="(\d+)",serial_no="(\w+)",signature="(.+)"$`,
	)
	m := re.FindStringSubmatch(header)
	s.Require().Len(m, 6)
	s.Equal(testMchID, m[1])
	s.Equal("1554208460", m[3])
	s.Equal(testSerialNo, m[4])

	message := fmt.Sprintf("POST\n%s\n%s\n%s\n%s\n", RouteTransferBills, m[3], m[2], body)
	s.NoError(VerifySHA256WithRSA(message, m[5], &s.merchantKey.PublicKey))
}

func (s *SignTestSuite) TestValidateResponse() {
	now := time.Now()
	body := []byte(`{"state":"SUCCESS"}`)

	cases := []struct {
		name    string
		header  func() map[string]string
		body    []byte
		wantErr error
	}{
		{
			name:   "valid",
			header: func() map[string]string { return nil },
			body:   body,
		}, {
			name:    "tampered body",
			header:  func() map[string]string { return nil },
			body:    []byte(`{"state":"FAIL"}`),
			wantErr: ErrInvalidSignature,
		}, {
			name:    "serial mismatch",
			header:  func() map[string]string { return map[string]string{headerSerial: "other"} },
			body:    body,
			wantErr: ErrSerialMismatch,
		}, {
			name: "expired timestamp",
			header: func() map[string]string {
				return map[string]string{headerTimestamp: fmt.Sprint(now.Add(-6 * time.Minute).Unix())}
			},
			body:    body,
			wantErr: ErrTimestampExpired,
		}, {
			name:    "missing signature",
			header:  func() map[string]string { return map[string]string{headerSignature: ""} },
			body:    body,
			wantErr: ErrMissingSignature,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			header := signHeaders(s.T(), s.platformKey, body, now)
			for k, v := range t.header() {
				header.Set(k, v)
			}
			err := ValidateResponse(testPublicKeyID, &s.platformKey.PublicKey, header, t.body, now)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				s.Contains(err.Error(), "08F78BB5AF0610D302A5392CBF5B8A0C")
				return
			}
			s.Require().NoError(err)
		})
	}
}

func (s *SignTestSuite) TestLoadKeys() {
	dir := s.T().TempDir()
	privatePath := filepath.Join(dir, "apiclient_key.pem")
	publicPath := filepath.Join(dir, "pub_key.pem")
	s.Require().NoError(os.WriteFile(privatePath, []byte(encodePrivateKey(s.T(), s.merchantKey)), 0o600))
	s.Require().NoError(os.WriteFile(publicPath, []byte(encodePublicKey(s.T(), &s.platformKey.PublicKey)), 0o600))

	merchant, err := LoadMerchant(MerchantFiles{
		AppID:               testAppID,
		MchID:               testMchID,
		CertificateSerialNo: testSerialNo,
		PrivateKeyPath:      privatePath,
		PublicKeyID:         testPublicKeyID,
		PublicKeyPath:       publicPath,
		APIv3Key:            testAPIv3Key,
	})
	s.Require().NoError(err)
	s.True(merchant.PrivateKey.Equal(s.merchantKey))
	s.True(merchant.PublicKey.Equal(&s.platformKey.PublicKey))

	_, err = LoadMerchant(MerchantFiles{APIv3Key: "short"})
	s.Require().ErrorIs(err, ErrInvalidAPIv3Key)

	_, err = LoadPrivateKey(encodePublicKey(s.T(), &s.platformKey.PublicKey))
	s.Require().ErrorIs(err, ErrInvalidPEM)

	_, err = LoadPublicKey(strings.Repeat("x", 10))
	s.Require().ErrorIs(err, ErrInvalidPEM)
}
