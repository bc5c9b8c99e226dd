package model

import "rantoo/shared/constant"

const (
	EntityName = "conversion"
)

type Direction string

const (
	DirectionEpochToHuman Direction = constant.DirectionEpochToHuman
	DirectionHumanToEpoch Direction = constant.DirectionHumanToEpoch
)

// Conversion is the result of one conversion in either direction. Timezone
// holds the canonical identifier the conversion ran in, empty for UTC.
type Conversion struct {
	Direction Direction
	Input     string
	Epoch     int64
	Datetime  string
	Timezone  string
}
