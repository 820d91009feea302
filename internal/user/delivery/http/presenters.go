package http

import (
	"strings"

	"taskie/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"required,max=255"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

func (r registerReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errEmptyName
	}
	return nil
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     strings.TrimSpace(r.Name),
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type messageResp struct {
	Message string `json:"message"`
}

type loginResp struct {
	Token string `json:"token"`
}

type profileResp struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *handler) newProfileResp(out user.ProfileOutput) profileResp {
	return profileResp{Email: out.Email, Name: out.Name}
}
