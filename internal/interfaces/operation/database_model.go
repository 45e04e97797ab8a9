package operation

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"time"
)

type Account struct {
	ID         uint      `gorm:"primarykey" json:"-"`
	Identity   string    `gorm:"size:64;uniqueIndex;not null" json:"identity"`
	Password   string    `gorm:"size:128;not null" json:"-"`
	Permission int64     `gorm:"default:0;not null" json:"permission"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

type Airline struct {
	ID           uint           `gorm:"primarykey" json:"-"`
	Identity     string         `gorm:"size:64;uniqueIndex;not null" json:"identity"`
	IsRegistered bool           `gorm:"default:0;not null;index" json:"is_registered"`
	IsFunded     bool           `gorm:"default:0;not null" json:"is_funded"`
	RegisteredBy string         `gorm:"size:64;not null" json:"registered_by"`
	Votes        []*AirlineVote `gorm:"foreignKey:Candidate;references:Identity" json:"-"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
}

type AirlineVote struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Candidate string    `gorm:"size:64;uniqueIndex:airline_vote;not null" json:"candidate"`
	Voter     string    `gorm:"size:64;uniqueIndex:airline_vote;not null" json:"voter"`
	CreatedAt time.Time `json:"created_at"`
}

type Flight struct {
	ID            uint       `gorm:"primarykey" json:"-"`
	Airline       string     `gorm:"size:64;uniqueIndex:flight_key;not null" json:"airline"`
	Designator    string     `gorm:"size:32;uniqueIndex:flight_key;not null" json:"designator"`
	DepartureTime int64      `gorm:"uniqueIndex:flight_key;not null" json:"departure_time"`
	StatusCode    int        `gorm:"default:0;not null" json:"status_code"`
	IsRegistered  bool       `gorm:"default:0;not null" json:"is_registered"`
	FinalizedAt   *time.Time `json:"finalized_at"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

func (f *Flight) Key() surety.FlightKey {
	return surety.FlightKey{Airline: surety.Identity(f.Airline), Designator: f.Designator, DepartureTime: f.DepartureTime}
}

func (f *Flight) Status() surety.StatusCode { return surety.StatusCode(f.StatusCode) }

type Oracle struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Identity  string    `gorm:"size:64;uniqueIndex;not null" json:"identity"`
	Index0    int       `gorm:"not null" json:"-"`
	Index1    int       `gorm:"not null" json:"-"`
	Index2    int       `gorm:"not null" json:"-"`
	Fee       int64     `gorm:"not null" json:"fee"`
	CreatedAt time.Time `json:"-"`
}

func (o *Oracle) Indexes() [3]int { return [3]int{o.Index0, o.Index1, o.Index2} }

func (o *Oracle) HoldsIndex(index int) bool {
	return o.Index0 == index || o.Index1 == index || o.Index2 == index
}

type OracleRequest struct {
	ID             uint              `gorm:"primarykey" json:"-"`
	RequestedIndex int               `gorm:"uniqueIndex:oracle_request;not null" json:"index"`
	Airline        string            `gorm:"size:64;uniqueIndex:oracle_request;not null" json:"airline"`
	Designator     string            `gorm:"size:32;uniqueIndex:oracle_request;not null" json:"designator"`
	DepartureTime  int64             `gorm:"uniqueIndex:oracle_request;not null" json:"departure_time"`
	Requester      string            `gorm:"size:64;not null" json:"requester"`
	IsFinalized    bool              `gorm:"default:0;not null;index" json:"is_finalized"`
	FinalStatus    int               `gorm:"default:0;not null" json:"final_status"`
	RequestedAt    time.Time         `gorm:"not null" json:"requested_at"`
	FinalizedAt    *time.Time        `gorm:"index" json:"finalized_at"`
	Responses      []*OracleResponse `gorm:"foreignKey:RequestId;references:ID;constraint:OnDelete:CASCADE" json:"responses"`
}

func (r *OracleRequest) Key() surety.FlightKey {
	return surety.FlightKey{Airline: surety.Identity(r.Airline), Designator: r.Designator, DepartureTime: r.DepartureTime}
}

type OracleResponse struct {
	ID         uint      `gorm:"primarykey" json:"-"`
	RequestId  uint      `gorm:"uniqueIndex:oracle_response;not null" json:"-"`
	Oracle     string    `gorm:"size:64;uniqueIndex:oracle_response;not null" json:"oracle"`
	StatusCode int       `gorm:"uniqueIndex:oracle_response;not null" json:"status_code"`
	CreatedAt  time.Time `json:"created_at"`
}

type InsurancePolicy struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Passenger     string     `gorm:"size:64;index;not null" json:"passenger"`
	Airline       string     `gorm:"size:64;index:policy_flight;not null" json:"airline"`
	Designator    string     `gorm:"size:32;index:policy_flight;not null" json:"designator"`
	DepartureTime int64      `gorm:"index:policy_flight;not null" json:"departure_time"`
	Premium       int64      `gorm:"not null" json:"premium"`
	Claimed       bool       `gorm:"default:0;not null" json:"claimed"`
	Payout        int64      `gorm:"default:0;not null" json:"payout"`
	ClaimedAt     *time.Time `json:"claimed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"-"`
}

func (p *InsurancePolicy) Key() surety.FlightKey {
	return surety.FlightKey{Airline: surety.Identity(p.Airline), Designator: p.Designator, DepartureTime: p.DepartureTime}
}

type OperationalFlag struct {
	Ledger    string    `gorm:"primarykey;size:16" json:"ledger"`
	Enabled   bool      `gorm:"not null" json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedCaller struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Identity  string    `gorm:"size:64;uniqueIndex;not null" json:"identity"`
	CreatedAt time.Time `json:"created_at"`
}

// PoolReserve is a single row holding the value available for payouts
type PoolReserve struct {
	ID        uint  `gorm:"primarykey"`
	Reserve   int64 `gorm:"default:0;not null"`
	UpdatedAt time.Time
}

type TransferKind string

const (
	TransferDeposit TransferKind = "deposit"
	TransferPayout  TransferKind = "payout"
)

type Transfer struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Kind      string    `gorm:"size:16;index;not null" json:"kind"`
	Identity  string    `gorm:"size:64;index;not null" json:"identity"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Reference string    `gorm:"size:128;not null" json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID            uint      `gorm:"primarykey"`
	Kind          string    `gorm:"size:32;index;not null"`
	Actor         string    `gorm:"size:64;not null"`
	Airline       string    `gorm:"size:64;not null"`
	Designator    string    `gorm:"size:32;not null"`
	DepartureTime int64     `gorm:"not null"`
	Index         int       `gorm:"not null"`
	StatusCode    int       `gorm:"not null"`
	Votes         int       `gorm:"not null"`
	Amount        int64     `gorm:"not null"`
	Ledger        string    `gorm:"size:16;not null"`
	Enabled       bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"index"`
}

func NewEvent(observation *surety.Observation) *Event {
	return &Event{
		Kind:          string(observation.Kind),
		Actor:         observation.Actor.String(),
		Airline:       observation.Airline.String(),
		Designator:    observation.Designator,
		DepartureTime: observation.DepartureTime,
		Index:         observation.Index,
		StatusCode:    int(observation.Status),
		Votes:         observation.Votes,
		Amount:        int64(observation.Amount),
		Ledger:        string(observation.Ledger),
		Enabled:       observation.Enabled,
		CreatedAt:     observation.At,
	}
}

func (e *Event) Observation() *surety.Observation {
	return &surety.Observation{
		ID:            e.ID,
		Kind:          surety.ObservationKind(e.Kind),
		At:            e.CreatedAt,
		Actor:         surety.Identity(e.Actor),
		Airline:       surety.Identity(e.Airline),
		Designator:    e.Designator,
		DepartureTime: e.DepartureTime,
		Index:         e.Index,
		Status:        surety.StatusCode(e.StatusCode),
		Votes:         e.Votes,
		Amount:        surety.Amount(e.Amount),
		Ledger:        surety.Ledger(e.Ledger),
		Enabled:       e.Enabled,
	}
}
