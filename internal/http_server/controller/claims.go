// Package controller
package controller

import (
	"github.com/golang-jwt/jwt/v5"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

func claimsOf(ctx echo.Context) *Claims {
	token := ctx.Get("user").(*jwt.Token)
	return token.Claims.(*Claims)
}

func jwtHeaderOf(ctx echo.Context) JwtHeader {
	claim := claimsOf(ctx)
	return JwtHeader{Identity: claim.Identity, Permission: claim.Permission}
}
