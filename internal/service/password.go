// File: internal/service/password.go
package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost bcrypt work factor
const PasswordCost = 12

// 測試可覆寫
var (
	passwordCost                 = PasswordCost
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// compareDummy 查無使用者時仍做一次 bcrypt 比對，讓回應時間與密碼錯誤相近
func compareDummy(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = HashPassword("upperskills-dummy-password")
	})
	_ = ComparePassword(dummyHash, password)
}
