// Package service
package service

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
)

type InsuranceService struct {
	logger log.LoggerInterface
	core   *surety.Core
}

func NewInsuranceService(logger log.LoggerInterface, core *surety.Core) *InsuranceService {
	return &InsuranceService{
		logger: logger,
		core:   core,
	}
}

var SuccessBuyInsurance = ApiStatus{StatusName: "BUY_INSURANCE_SUCCESS", Description: "policy purchased", HttpCode: Ok}

func (insuranceService *InsuranceService) BuyInsurance(req *RequestBuyInsurance) *ApiResponse[ResponseBuyInsurance] {
	premium, status := parseAmount(req.Premium)
	if status != nil {
		return NewApiResponse[ResponseBuyInsurance](status, Unsatisfied, nil)
	}
	key := NewFlightKey(NewIdentity(req.Airline), req.Designator, req.DepartureTime)
	policy, res := CallCoreFuncAndCheckError[operation.InsurancePolicy, ResponseBuyInsurance](insuranceService.logger, func() (*operation.InsurancePolicy, error) {
		return insuranceService.core.BuyInsurance(req.Caller(), key, premium)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessBuyInsurance, Unsatisfied, (*ResponseBuyInsurance)(policy))
}

var SuccessGetPolicies = ApiStatus{StatusName: "GET_POLICIES_SUCCESS", Description: "policies listed", HttpCode: Ok}

func (insuranceService *InsuranceService) GetPolicies(req *RequestGetPolicies) *ApiResponse[ResponseGetPolicies] {
	policies, res := CallCoreFuncAndCheckError[[]*operation.InsurancePolicy, ResponseGetPolicies](insuranceService.logger, func() (*[]*operation.InsurancePolicy, error) {
		policies, err := insuranceService.core.Policies(req.Caller())
		return &policies, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetPolicies, Unsatisfied, (*ResponseGetPolicies)(policies))
}

var SuccessClaimInsurance = ApiStatus{StatusName: "CLAIM_SUCCESS", Description: "insurance paid", HttpCode: Ok}

func (insuranceService *InsuranceService) ClaimInsurance(req *RequestClaimInsurance) *ApiResponse[ResponseClaimInsurance] {
	result, res := CallCoreFuncAndCheckError[surety.ClaimResult, ResponseClaimInsurance](insuranceService.logger, func() (*surety.ClaimResult, error) {
		return insuranceService.core.ClaimInsurance(req.Caller())
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessClaimInsurance, Unsatisfied, (*ResponseClaimInsurance)(result))
}

var SuccessGetBalance = ApiStatus{StatusName: "GET_BALANCE_SUCCESS", Description: "balance found", HttpCode: Ok}

func (insuranceService *InsuranceService) GetBalance(req *RequestGetBalance) *ApiResponse[ResponseGetBalance] {
	balance, res := CallCoreFuncAndCheckError[ResponseGetBalance, ResponseGetBalance](insuranceService.logger, func() (*ResponseGetBalance, error) {
		paid, err := insuranceService.core.Balance(req.Caller())
		if err != nil {
			return nil, err
		}
		reserve, err := insuranceService.core.Reserve()
		if err != nil {
			return nil, err
		}
		return &ResponseGetBalance{Identity: req.Identity, Paid: paid, Reserve: reserve}, nil
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetBalance, Unsatisfied, balance)
}

var SuccessGetTransfers = ApiStatus{StatusName: "GET_TRANSFERS_SUCCESS", Description: "transfers listed", HttpCode: Ok}

func (insuranceService *InsuranceService) GetTransfers(req *RequestGetTransfers) *ApiResponse[ResponseGetTransfers] {
	req.Normalize(global.QueryPageSizeMax)
	var total int64
	transfers, res := CallCoreFuncAndCheckError[[]*operation.Transfer, ResponseGetTransfers](insuranceService.logger, func() (*[]*operation.Transfer, error) {
		transfers, count, err := insuranceService.core.Transfers(req.Caller(), req.Page, req.PageSize)
		total = count
		return &transfers, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetTransfers, Unsatisfied, (*ResponseGetTransfers)(pageOf(*transfers, &req.PageQuery, total)))
}
