package wxpay

import (
	"crypto/rsa"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
)

type NotifyTestSuite struct {
	suite.Suite
	merchantKey *rsa.PrivateKey
	platformKey *rsa.PrivateKey
	client      *Client
}

func TestNotifySuite(t *testing.T) {
	suite.Run(t, new(NotifyTestSuite))
}

func (s *NotifyTestSuite) SetupSuite() {
	s.merchantKey, s.platformKey = testKeys(s.T())
	s.client = New("", testMerchant(s.merchantKey, s.platformKey))
}

func (s *NotifyTestSuite) notificationBody(algorithm string, plain []byte) []byte {
	const nonce, aad = "fdasflkja484", "mch_payment"
	body, err := json.Marshal(Notification{
		ID:           "EV-2018022511223320873",
		CreateTime:   "2015-05-20T13:29:35+08:00",
		ResourceType: "encrypt-resource",
		EventType:    "MCHTRANSFER.BILL.FINISHED",
		Summary:      "商家转账单据终态通知",
		Resource: NotificationResource{
			OriginalType:   "mch_payment",
			Algorithm:      algorithm,
			Ciphertext:     encryptResource(s.T(), testAPIv3Key, nonce, aad, plain),
			AssociatedData: aad,
			Nonce:          nonce,
		},
	})
	s.Require().NoError(err)
	return body
}

func (s *NotifyTestSuite) TestDecryptResource() {
	plain := []byte(`{"out_bill_no":"plfk2020042013"}`)
	ciphertext := encryptResource(s.T(), testAPIv3Key, "nonce1234567", "transfer", plain)

	got, err := DecryptResource(testAPIv3Key, "transfer", "nonce1234567", ciphertext)
	s.Require().NoError(err)
	s.Equal(plain, got)

	_, err = DecryptResource("short", "transfer", "nonce1234567", ciphertext)
	s.Require().ErrorIs(err, ErrInvalidAPIv3Key)

	_, err = DecryptResource(testAPIv3Key, "other", "nonce1234567", ciphertext)
	s.Require().ErrorIs(err, ErrResourceDecryption)

	_, err = DecryptResource(testAPIv3Key, "transfer", "nonce1234567", "not base64!")
	s.Require().ErrorIs(err, ErrResourceDecryption)
}

func (s *NotifyTestSuite) TestParseNotification() {
	plain := []byte(`{
		"out_bill_no": "plfk2020042013",
		"transfer_bill_no": "1330000071100999991182020050700019480001",
		"state": "SUCCESS",
		"mch_id": "1900001109",
		"transfer_amount": 2000,
		"openid": "o-MYE421800elYMDE34nYD456Xoy",
		"create_time": "2015-05-20T13:29:35+08:00",
		"update_time": "2023-08-15T20:33:22+08:00"
	}`)
	body := s.notificationBody(resourceAlgorithm, plain)
	header := signHeaders(s.T(), s.platformKey, body, time.Now())

	notification, bill, err := s.client.ParseNotification(header, body)
	s.Require().NoError(err)
	s.Equal("MCHTRANSFER.BILL.FINISHED", notification.EventType)
	s.Equal("plfk2020042013", bill.OutBillNo)
	s.Equal(domain.BillStateSuccess, bill.State)
	s.Equal(int64(2000), bill.TransferAmount)
}

func (s *NotifyTestSuite) TestParseNotification_Rejected() {
	plain := []byte(`{"out_bill_no":"plfk2020042013","state":"SUCCESS"}`)

	s.Run("bad signature", func() {
		body := s.notificationBody(resourceAlgorithm, plain)
		header := signHeaders(s.T(), s.merchantKey, body, time.Now())
		_, _, err := s.client.ParseNotification(header, body)
		s.Require().ErrorIs(err, ErrInvalidSignature)
	})

	s.Run("unsupported algorithm", func() {
		body := s.notificationBody("AEAD_SM4_GCM", plain)
		header := signHeaders(s.T(), s.platformKey, body, time.Now())
		_, _, err := s.client.ParseNotification(header, body)
		s.Require().ErrorIs(err, ErrUnsupportedCipher)
	})
}
