package api

import (
	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/neon"
)

// SelectRequest is the body of POST /v1/gemm/select. DataType is a name
// accepted by dtype.Parse.
type SelectRequest struct {
	M           int    `json:"m"`
	N           int    `json:"n"`
	K           int    `json:"k"`
	B           int    `json:"b"`
	DataType    string `json:"data_type"`
	RHSConstant bool   `json:"rhs_constant"`
}

type Selection struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`
	Query     string `json:"query"`
	dispatch.Result
}

type NEONSelection struct {
	Features device.CPUFeatures `json:"features"`
	Method   neon.Method        `json:"method"`
	Blocking neon.BlockConfig   `json:"blocking"`
}

type TargetInfo struct {
	Name string `json:"name"`
	Arch string `json:"arch"`
}

type TargetList struct {
	Object string       `json:"object"`
	Data   []TargetInfo `json:"data"`
}

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}
