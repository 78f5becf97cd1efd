package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/FuadJemal86/aquaErp-sub001/models"
)

func loginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", Login)
	return r
}

func TestLoginSetsCookieAndLastLogin(t *testing.T) {
	db := setupTestDB(t, &models.User{})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	u := models.User{Username: "kebede", FullName: "Kebede A", Role: models.RoleAdmin, PasswordHash: string(hash), IsActive: true}
	if err := db.Create(&u).Error; err != nil {
		t.Fatal(err)
	}

	r := loginRouter()
	w := postJSON(t, r, "/login", `{"username": "kebede", "password": "secret123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var tokenCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "token" {
			tokenCookie = ck
		}
	}
	if tokenCookie == nil || tokenCookie.Value == "" {
		t.Fatal("no token cookie set on successful login")
	}
	if !tokenCookie.HttpOnly {
		t.Error("token cookie is not httpOnly")
	}

	var stored models.User
	if err := db.First(&stored, u.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.LastLoginAt == nil {
		t.Error("last_login_at not recorded on login")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := setupTestDB(t, &models.User{})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	u := models.User{Username: "kebede", Role: models.RoleAdmin, PasswordHash: string(hash), IsActive: true}
	if err := db.Create(&u).Error; err != nil {
		t.Fatal(err)
	}

	r := loginRouter()
	w := postJSON(t, r, "/login", `{"username": "kebede", "password": "wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var stored models.User
	if err := db.First(&stored, u.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.LastLoginAt != nil {
		t.Error("last_login_at recorded on failed login")
	}
}
