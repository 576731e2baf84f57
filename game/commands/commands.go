package commands

type Command interface {
	Name() string
}

type Identify struct {
	PlayerID string `json:"playerId"`
}

func (c Identify) Name() string { return "IDENTIFY" }

type JoinTable struct {
	TableID string `json:"tableId"`
}

func (c JoinTable) Name() string { return "JOIN_TABLE" }

type LeaveTable struct {
	TableID string `json:"tableId"`
}

func (c LeaveTable) Name() string { return "LEAVE_TABLE" }

type PlaceBet struct {
	TableID string `json:"tableId"`
	Spot    int    `json:"spot"`
	Chips   []int  `json:"chips"` // chip denominations in units
}

func (c PlaceBet) Name() string { return "PLACE_BET" }

type Deal struct {
	TableID string `json:"tableId"`
}

func (c Deal) Name() string { return "DEAL" }

type Hit struct {
	TableID string `json:"tableId"`
	Spot    int    `json:"spot"`
}

func (c Hit) Name() string { return "HIT" }

type Stand struct {
	TableID string `json:"tableId"`
}

func (c Stand) Name() string { return "STAND" }

type Resolve struct {
	TableID string `json:"tableId"`
}

func (c Resolve) Name() string { return "RESOLVE" }

type ResetSession struct {
	TableID string `json:"tableId"`
}

func (c ResetSession) Name() string { return "RESET_SESSION" }

type GetState struct {
	TableID string `json:"tableId"`
}

func (c GetState) Name() string { return "GET_STATE" }
