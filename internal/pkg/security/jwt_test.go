package security

import (
	"strings"
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Fatalf("期望 claims {42 alice}, 实际为 {%d %s}", claims.UserID, claims.Username)
	}
	if claims.Issuer != "Glimpse" {
		t.Fatalf("期望签发者 Glimpse, 实际为 %q", claims.Issuer)
	}
}

func TestValidateToken_Tampered(t *testing.T) {
	token, err := GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA"
	if _, err = ValidateToken(tampered); err == nil {
		t.Fatal("篡改签名的 token 应校验失败")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(1, "bob")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	sig, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature failed: %v", err)
	}
	if !strings.HasSuffix(token, "."+sig) {
		t.Fatalf("签名应是 token 的第三段, 实际为 %q", sig)
	}

	if _, err = ExtractSignature("not-a-token"); err == nil {
		t.Fatal("非法 token 应返回错误")
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if err = CheckPasswordHash("secret123", hash); err != nil {
		t.Fatalf("正确密码应校验通过: %v", err)
	}
	if err = CheckPasswordHash("wrong", hash); err == nil {
		t.Fatal("错误密码应校验失败")
	}
}
