package ast

type (
	FileID     uint32
	StmtID     uint32
	ExprID     uint32
	TypeExprID uint32
	ParamID    uint32
	PayloadID  uint32
)

const (
	NoFileID     FileID     = 0
	NoStmtID     StmtID     = 0
	NoExprID     ExprID     = 0
	NoTypeExprID TypeExprID = 0
	NoParamID    ParamID    = 0
	NoPayloadID  PayloadID  = 0
)

func (id FileID) IsValid() bool     { return id != NoFileID }
func (id StmtID) IsValid() bool     { return id != NoStmtID }
func (id ExprID) IsValid() bool     { return id != NoExprID }
func (id TypeExprID) IsValid() bool { return id != NoTypeExprID }
func (id ParamID) IsValid() bool    { return id != NoParamID }
func (id PayloadID) IsValid() bool  { return id != NoPayloadID }
