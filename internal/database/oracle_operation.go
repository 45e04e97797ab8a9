package database

import (
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type OracleOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewOracleOperation(db *gorm.DB, queryTimeout time.Duration) *OracleOperation {
	return &OracleOperation{db: db, queryTimeout: queryTimeout}
}

func (oracleOperation *OracleOperation) GetOracle(identity string) (oracle *Oracle, err error) {
	oracle = &Oracle{}
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	err = db.Where("identity = ?", identity).First(oracle).Error
	return oracle, notFoundAs(err, ErrOracleNotFound)
}

func (oracleOperation *OracleOperation) AddOracle(oracle *Oracle) error {
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	var total int64
	if err := db.Model(&Oracle{}).Where("identity = ?", oracle.Identity).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return ErrOracleExists
	}
	return db.Create(oracle).Error
}

func (oracleOperation *OracleOperation) CountOracles() (total int64, err error) {
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	err = db.Model(&Oracle{}).Count(&total).Error
	return
}

func (oracleOperation *OracleOperation) GetOracleRequest(index int, airline, designator string, departureTime int64) (request *OracleRequest, err error) {
	request = &OracleRequest{}
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	err = db.Where("requested_index = ? AND airline = ? AND designator = ? AND departure_time = ?",
		index, airline, designator, departureTime).
		Preload("Responses").
		First(request).Error
	return request, notFoundAs(err, ErrRequestNotFound)
}

func (oracleOperation *OracleOperation) GetRequestedIndexes(airline, designator string, departureTime int64) (indexes []int, err error) {
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	err = db.Model(&OracleRequest{}).
		Where("airline = ? AND designator = ? AND departure_time = ?", airline, designator, departureTime).
		Order("requested_index").
		Pluck("requested_index", &indexes).Error
	return
}

func (oracleOperation *OracleOperation) AddOracleRequest(request *OracleRequest) error {
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	var total int64
	if err := db.Model(&OracleRequest{}).
		Where("requested_index = ? AND airline = ? AND designator = ? AND departure_time = ?",
			request.RequestedIndex, request.Airline, request.Designator, request.DepartureTime).
		Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return ErrRequestExists
	}
	return db.Create(request).Error
}

func (oracleOperation *OracleOperation) AddOracleResponse(request *OracleRequest, oracle string, status int) (bool, error) {
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	result := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&OracleResponse{RequestId: request.ID, Oracle: oracle, StatusCode: status})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (oracleOperation *OracleOperation) CountOracleResponses(request *OracleRequest, status int) (total int64, err error) {
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	err = db.Model(&OracleResponse{}).
		Where("request_id = ? AND status_code = ?", request.ID, status).
		Count(&total).Error
	return
}

func (oracleOperation *OracleOperation) FinalizeOracleRequest(request *OracleRequest, status int, finalizedAt time.Time) error {
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	if err := db.Model(request).Updates(map[string]interface{}{
		"is_finalized": true,
		"final_status": status,
		"finalized_at": finalizedAt,
	}).Error; err != nil {
		return err
	}
	request.IsFinalized = true
	request.FinalStatus = status
	request.FinalizedAt = &finalizedAt
	return nil
}

func (oracleOperation *OracleOperation) GetFinalizedRequestsBefore(before time.Time, limit int) (requests []*OracleRequest, err error) {
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	err = db.Where("is_finalized = ? AND finalized_at < ?", true, before).
		Order("id").
		Limit(limit).
		Preload("Responses").
		Find(&requests).Error
	return
}

func (oracleOperation *OracleOperation) DeleteOracleRequests(requests []*OracleRequest) error {
	if len(requests) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(requests))
	for _, request := range requests {
		ids = append(ids, request.ID)
	}
	db, cancel := withTimeout(oracleOperation.db, oracleOperation.queryTimeout)
	defer cancel()
	if err := db.Where("request_id IN ?", ids).Delete(&OracleResponse{}).Error; err != nil {
		return err
	}
	return db.Where("id IN ?", ids).Delete(&OracleRequest{}).Error
}
