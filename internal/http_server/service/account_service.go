// Package service
package service

import (
	"errors"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"strings"
)

type AccountService struct {
	logger           log.LoggerInterface
	config           *c.HttpServerConfig
	reserved         map[surety.Identity]struct{}
	reservedPrefix   string
	accountOperation operation.AccountOperationInterface
}

// NewAccountService keeps the administrator, the first airline and the relay oracles out of public registration
func NewAccountService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	suretyConfig *c.SuretyConfig,
	relayConfig *c.OracleRelayConfig,
	accountOperation operation.AccountOperationInterface,
) *AccountService {
	reserved := map[surety.Identity]struct{}{
		surety.NewIdentity(suretyConfig.Administrator): {},
		surety.NewIdentity(suretyConfig.FirstAirline):  {},
	}
	reservedPrefix := ""
	if relayConfig != nil && relayConfig.Enabled {
		reservedPrefix = strings.ToLower(strings.TrimSpace(relayConfig.IdentityHead))
	}
	return &AccountService{
		logger:           logger,
		config:           config,
		reserved:         reserved,
		reservedPrefix:   reservedPrefix,
		accountOperation: accountOperation,
	}
}

func (accountService *AccountService) isReserved(identity surety.Identity) bool {
	if _, ok := accountService.reserved[identity]; ok {
		return true
	}
	return accountService.reservedPrefix != "" && strings.HasPrefix(identity.String(), accountService.reservedPrefix)
}

func (accountService *AccountService) tokens(account *operation.Account) *ResponseAccountRegister {
	token := NewClaims(accountService.config.JWT, account, false)
	flushToken := NewClaims(accountService.config.JWT, account, true)
	return &ResponseAccountRegister{
		Account:    account,
		Token:      token.GenerateKey(),
		FlushToken: flushToken.GenerateKey(),
	}
}

var (
	ErrRegisterFail     = ApiStatus{StatusName: "REGISTER_FAIL", Description: "account registration failed", HttpCode: ServerInternalError}
	ErrIdentityTaken    = ApiStatus{StatusName: "IDENTITY_TAKEN", Description: "identity has been used", HttpCode: Conflict}
	ErrIdentityReserved = ApiStatus{StatusName: "IDENTITY_RESERVED", Description: "identity is reserved for the system", HttpCode: PermissionDenied}
	SuccessRegister     = ApiStatus{StatusName: "REGISTER_SUCCESS", Description: "account registered", HttpCode: Ok}
)

func (accountService *AccountService) Register(req *RequestAccountRegister) *ApiResponse[ResponseAccountRegister] {
	identity := surety.NewIdentity(req.Identity)
	if identity.IsEmpty() || req.Password == "" {
		return NewApiResponse[ResponseAccountRegister](&ErrIllegalParam, Unsatisfied, nil)
	}
	if err := identityValidator.CheckString(identity.String()); err != nil {
		return NewApiResponse[ResponseAccountRegister](err, Unsatisfied, nil)
	}
	if accountService.isReserved(identity) {
		accountService.logger.WarnF("AccountService.Register refused reserved identity %s", identity)
		return NewApiResponse[ResponseAccountRegister](&ErrIdentityReserved, Unsatisfied, nil)
	}
	if err := passwordValidator.CheckString(req.Password); err != nil {
		return NewApiResponse[ResponseAccountRegister](err, Unsatisfied, nil)
	}
	account, err := accountService.accountOperation.NewAccount(identity.String(), req.Password, 0)
	if err != nil {
		accountService.logger.ErrorF("AccountService.Register encode password error: %v", err)
		return NewApiResponse[ResponseAccountRegister](&ErrRegisterFail, Unsatisfied, nil)
	}
	if err := accountService.accountOperation.AddAccount(account); err != nil {
		if errors.Is(err, operation.ErrAccountExists) {
			return NewApiResponse[ResponseAccountRegister](&ErrIdentityTaken, Unsatisfied, nil)
		}
		accountService.logger.ErrorF("AccountService.Register add account error: %v", err)
		return NewApiResponse[ResponseAccountRegister](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessRegister, Unsatisfied, accountService.tokens(account))
}

var (
	ErrIdentityOrPassword = ApiStatus{StatusName: "WRONG_IDENTITY_OR_PASSWORD", Description: "wrong identity or password", HttpCode: BadRequest}
	SuccessLogin          = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "login success", HttpCode: Ok}
)

func (accountService *AccountService) Login(req *RequestAccountLogin) *ApiResponse[ResponseAccountLogin] {
	identity := surety.NewIdentity(req.Identity)
	if identity.IsEmpty() || req.Password == "" {
		return NewApiResponse[ResponseAccountLogin](&ErrIllegalParam, Unsatisfied, nil)
	}
	account, err := accountService.accountOperation.GetAccount(identity.String())
	if errors.Is(err, operation.ErrAccountNotFound) {
		return NewApiResponse[ResponseAccountLogin](&ErrIdentityOrPassword, Unsatisfied, nil)
	}
	if err != nil {
		accountService.logger.ErrorF("AccountService.Login get account error: %v", err)
		return NewApiResponse[ResponseAccountLogin](&ErrDatabaseFail, Unsatisfied, nil)
	}
	if !accountService.accountOperation.VerifyAccountPassword(account, req.Password) {
		return NewApiResponse[ResponseAccountLogin](&ErrIdentityOrPassword, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessLogin, Unsatisfied, (*ResponseAccountLogin)(accountService.tokens(account)))
}

var (
	ErrNotFlushToken = ApiStatus{StatusName: "NOT_FLUSH_TOKEN", Description: "a refresh token is required", HttpCode: BadRequest}
	SuccessGetToken  = ApiStatus{StatusName: "GET_TOKEN_SUCCESS", Description: "token refreshed", HttpCode: Ok}
)

func (accountService *AccountService) GetToken(req *RequestGetToken) *ApiResponse[ResponseGetToken] {
	if !req.FlushToken {
		return NewApiResponse[ResponseGetToken](&ErrNotFlushToken, Unsatisfied, nil)
	}
	account, res := CallCoreFuncAndCheckError[operation.Account, ResponseGetToken](accountService.logger, func() (*operation.Account, error) {
		return accountService.accountOperation.GetAccount(req.Identity)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetToken, Unsatisfied, (*ResponseGetToken)(accountService.tokens(account)))
}
