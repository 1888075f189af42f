// File: internal/model/staff.go
package model

// Staff 可修改菜單的員工帳號，由設定檔提供
type Staff struct {
	Username     string
	PasswordHash string
}
