package service

import (
	"context"
	"errors"
	"testing"

	"Glimpse/internal/api/dto"
)

func TestRegister_DuplicateChecks(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("期望用户名 alice, 实际为 %q", user.Username)
	}

	_, err = env.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrUsernameExist) {
		t.Fatalf("期望 ErrUsernameExist, 实际为 %v", err)
	}

	_, err = env.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrEmailExist) {
		t.Fatalf("期望 ErrEmailExist, 实际为 %v", err)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := env.userSvc.Login(context.Background(), &dto.CredentialDTO{
		Username: "alice",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token == "" || result.User.Username != "alice" {
		t.Fatalf("登录应返回 token 和用户信息, 实际为 %+v", result)
	}

	_, err = env.userSvc.Login(context.Background(), &dto.CredentialDTO{
		Username: "alice",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrPasswordIncorrect) {
		t.Fatalf("期望 ErrPasswordIncorrect, 实际为 %v", err)
	}

	// 用户不存在与密码错误返回同一个错误，避免枚举用户名
	_, err = env.userSvc.Login(context.Background(), &dto.CredentialDTO{
		Username: "nobody",
		Password: "secret123",
	})
	if !errors.Is(err, ErrPasswordIncorrect) {
		t.Fatalf("期望 ErrPasswordIncorrect, 实际为 %v", err)
	}
}

func TestGetUserInfo(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env.gdb, "alice")

	info, err := env.userSvc.GetUserInfo(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("GetUserInfo failed: %v", err)
	}
	if info.Username != "alice" || info.Email != "alice@example.com" {
		t.Fatalf("用户信息不完整, 实际为 %+v", info)
	}

	_, err = env.userSvc.GetUserInfo(context.Background(), 9999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("期望 ErrUserNotFound, 实际为 %v", err)
	}
}
