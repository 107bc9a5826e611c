package polymarket

// auth.go: auth L2 del CLOB con API key derivada del wallet.
//
// La firma es HMAC-SHA256(secret, timestamp+method+path+body) en base64;
// el secret viene base64-encoded y se decodifica antes de usarse como key.

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// Creds son las credenciales L2 del CLOB.
type Creds struct {
	APIKey     string
	Secret     string
	Passphrase string
	Address    string
}

// Valid devuelve true si todas las credenciales requeridas están presentes.
func (c Creds) Valid() bool {
	return c.APIKey != "" && c.Secret != "" && c.Passphrase != "" && c.Address != ""
}

// l2Headers devuelve los headers de auth para una request L2.
func l2Headers(creds Creds, method, path, body string) (map[string]string, error) {
	secret, err := base64.StdEncoding.DecodeString(creds.Secret)
	if err != nil {
		return nil, fmt.Errorf("auth.l2Headers: decode secret: %w", err)
	}
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	return l2HeadersAt(creds, secret, method, path, body, ts), nil
}

// l2HeadersAt construye los headers con un timestamp dado (testeable).
func l2HeadersAt(creds Creds, secret []byte, method, path, body, ts string) map[string]string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(ts + method + path + body))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return map[string]string{
		"POLY_ADDRESS":    creds.Address,
		"POLY_API_KEY":    creds.APIKey,
		"POLY_TIMESTAMP":  ts,
		"POLY_PASSPHRASE": creds.Passphrase,
		"POLY_SIGNATURE":  sig,
	}
}
