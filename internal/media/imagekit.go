package media

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// UploadAuth is the parameter set the image CDN's client-side uploader
// expects: a one-time token, an expiry, and an HMAC-SHA1 signature over
// token+expire with the account's private key.
type UploadAuth struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

type Signer struct {
	privateKey string
	validity   time.Duration
}

func NewSigner(privateKey string) *Signer {
	return &Signer{
		privateKey: privateKey,
		validity:   30 * time.Minute,
	}
}

func (s *Signer) AuthParams() UploadAuth {
	token := uuid.NewString()
	expire := time.Now().Add(s.validity).Unix()
	return UploadAuth{
		Token:     token,
		Expire:    expire,
		Signature: s.sign(token, expire),
	}
}

func (s *Signer) sign(token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(s.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
