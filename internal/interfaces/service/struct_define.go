// Package service
package service

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/labstack/echo/v4"
	"time"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
	ServiceUnavailable  HttpCode = 503
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

type Claims struct {
	Identity   string `json:"identity"`
	Permission int64  `json:"permission"`
	FlushToken bool   `json:"flushToken"`
	config     *c.JWTConfig
	jwt.RegisteredClaims
}

// JwtHeader carries the caller taken from the bearer token
type JwtHeader struct {
	Identity   string
	Permission int64
}

func (header *JwtHeader) Caller() surety.Identity { return surety.Identity(header.Identity) }

func (header *JwtHeader) HasPermission(perm operation.Permission) bool {
	permission := operation.Permission(header.Permission)
	return permission.HasPermission(perm)
}

func NewClaims(config *c.JWTConfig, account *operation.Account, flushToken bool) *Claims {
	expiredDuration := config.ExpiresDuration
	if flushToken {
		expiredDuration += config.RefreshDuration
	}
	now := time.Now()
	return &Claims{
		Identity:   account.Identity,
		Permission: account.Permission,
		FlushToken: flushToken,
		config:     config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "SuretyHttpServer",
			Subject:   account.Identity,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiredDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "illegal parameter", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "missing parameter", BadRequest}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "no permission to do this", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "internal server error", ServerInternalError}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "missing or malformed jwt", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "invalid or expired jwt", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "unknown jwt error", ServerInternalError}

	ErrCallerUnauthorized = ApiStatus{"UNAUTHORIZED", "caller lacks the required role, funding or registration", PermissionDenied}
	ErrFlightFinalized    = ApiStatus{"FLIGHT_CLOSED", "flight status already finalized", PermissionDenied}
	ErrResourceNotFound   = ApiStatus{"NOT_FOUND", "resource does not exist", NotFound}
	ErrResourceDuplicate  = ApiStatus{"DUPLICATE", "resource already exists", Conflict}
	ErrValueInsufficient  = ApiStatus{"INSUFFICIENT_VALUE", "value below the required amount", BadRequest}
	ErrValueExceeded      = ApiStatus{"VALUE_TOO_HIGH", "value above the allowed amount", BadRequest}
	ErrLedgerPaused       = ApiStatus{"NOT_OPERATIONAL", "ledger is paused", ServiceUnavailable}
	ErrInsuranceClaimed   = ApiStatus{"ALREADY_CLAIMED", "insurance already claimed", Conflict}
	ErrNoClaimablePolicy  = ApiStatus{"NOTHING_TO_CLAIM", "no eligible policy to claim", BadRequest}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// ErrorStatus maps a core error onto its api status, nil for errors outside the taxonomy
func ErrorStatus(err error) *ApiStatus {
	switch {
	case errors.Is(err, surety.ErrFlightClosed):
		return &ErrFlightFinalized
	case errors.Is(err, surety.ErrUnauthorized):
		return &ErrCallerUnauthorized
	case errors.Is(err, surety.ErrNotFound), errors.Is(err, operation.ErrAccountNotFound):
		return &ErrResourceNotFound
	case errors.Is(err, surety.ErrDuplicate):
		return &ErrResourceDuplicate
	case errors.Is(err, surety.ErrInsufficientValue):
		return &ErrValueInsufficient
	case errors.Is(err, surety.ErrValueTooHigh):
		return &ErrValueExceeded
	case errors.Is(err, surety.ErrNotOperational):
		return &ErrLedgerPaused
	case errors.Is(err, surety.ErrAlreadyClaimed):
		return &ErrInsuranceClaimed
	case errors.Is(err, surety.ErrNothingToClaim):
		return &ErrNoClaimablePolicy
	case errors.Is(err, surety.ErrInvalidArgument):
		return &ErrIllegalParam
	default:
		return nil
	}
}

// CallCoreFuncAndCheckError calls a core or database function and converts its error into a response
func CallCoreFuncAndCheckError[R any, T any](logger log.LoggerInterface, fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	if err == nil {
		return result, nil
	}
	if status := ErrorStatus(err); status != nil {
		logger.DebugF("Core call rejected: %v", err)
		return nil, NewApiResponse[T](status, Unsatisfied, nil)
	}
	logger.ErrorF("Error in core function: %v", err)
	return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
}

// PageQuery is the paging part of list requests
type PageQuery struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

func (query *PageQuery) Normalize(maxPageSize int) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize <= 0 || query.PageSize > maxPageSize {
		query.PageSize = maxPageSize
	}
}

type PageResponse[T any] struct {
	Items    []*T  `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// FlightParam identifies a flight in the url path
type FlightParam struct {
	Airline       string `param:"airline"`
	Designator    string `param:"designator"`
	DepartureTime int64  `param:"departure"`
}

func (param *FlightParam) Key() surety.FlightKey {
	return surety.NewFlightKey(surety.NewIdentity(param.Airline), param.Designator, param.DepartureTime)
}
