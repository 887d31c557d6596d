package calculator

import (
	"fmt"
	"math"

	"github.com/couchcryptid/kiteboarding-calc/units"
)

// Scenario is a riding condition a board is tuned for.
type Scenario int

const (
	Beginner Scenario = iota
	LightWind
	NormalWind
	HardWind
)

func (s Scenario) String() string {
	if f, ok := boardFactors(s); ok {
		return f.name
	}
	return "unknown"
}

// BoardSize holds board dimensions in centimeters and square centimeters.
type BoardSize struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Area   float64 `json:"area"`
}

// BoardOptions bundles a board recommendation for each scenario.
type BoardOptions struct {
	Beginner   BoardSize `json:"beginner"`
	LightWind  BoardSize `json:"light_wind"`
	NormalWind BoardSize `json:"normal_wind"`
	HardWind   BoardSize `json:"hard_wind"`
}

type boardFactor struct {
	scenario Scenario
	name     string
	length   float64
	width    float64
	area     float64
}

// boardTable is indexed by Scenario.
var boardTable = [...]boardFactor{
	{Beginner, "beginner", 40.72, 10.78, 0.8834},
	{LightWind, "light_wind", 35.93, 10.78, 1.0},
	{NormalWind, "normal_wind", 33.53, 9.9, 0.9},
	{HardWind, "hard_wind", 30.66, 9.1036, 0.9},
}

func boardFactors(s Scenario) (boardFactor, bool) {
	if s < 0 || int(s) >= len(boardTable) {
		return boardFactor{}, false
	}
	return boardTable[s], true
}

// Scenarios lists every board scenario in table order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(boardTable))
	for i, f := range boardTable {
		out[i] = f.scenario
	}
	return out
}

// BoardSize returns board recommendations for every scenario.
func (c *Calculator) BoardSize(weight units.Weight) (BoardOptions, error) {
	kg, err := weightKilograms(weight)
	if err != nil {
		return BoardOptions{}, c.reject(opBoardSize, err)
	}

	root := math.Pow(kg, 1.0/3.0)
	options := BoardOptions{
		Beginner:   boardTable[Beginner].size(root),
		LightWind:  boardTable[LightWind].size(root),
		NormalWind: boardTable[NormalWind].size(root),
		HardWind:   boardTable[HardWind].size(root),
	}
	for _, b := range []BoardSize{options.Beginner, options.LightWind, options.NormalWind, options.HardWind} {
		if err := b.check(); err != nil {
			return BoardOptions{}, c.reject(opBoardSize, err, "weight_kg", kg)
		}
	}

	c.succeed(opBoardSize)
	return options, nil
}

// Board returns the board recommendation for a single scenario.
func (c *Calculator) Board(weight units.Weight, scenario Scenario) (BoardSize, error) {
	f, ok := boardFactors(scenario)
	if !ok {
		err := fmt.Errorf("%w: %d", ErrUnknownScenario, int(scenario))
		return BoardSize{}, c.reject(opBoardSize, err)
	}
	kg, err := weightKilograms(weight)
	if err != nil {
		return BoardSize{}, c.reject(opBoardSize, err)
	}

	board := f.size(math.Pow(kg, 1.0/3.0))
	if err := board.check(); err != nil {
		return BoardSize{}, c.reject(opBoardSize, err, "weight_kg", kg, "scenario", f.name)
	}

	c.succeed(opBoardSize)
	return board, nil
}

// size scales the factors by the cube root of rider weight. Area uses the
// unrounded length and width.
func (f boardFactor) size(cubeRoot float64) BoardSize {
	length := f.length * cubeRoot
	width := f.width * cubeRoot
	return BoardSize{
		Length: round(length),
		Width:  round(width),
		Area:   round(length * width * f.area),
	}
}

// check rejects boards whose rounded dimensions vanish or overflow.
func (b BoardSize) check() error {
	if !positiveFinite(b.Length) || !positiveFinite(b.Width) || !positiveFinite(b.Area) {
		return fmt.Errorf("%w: board %gx%g cm is out of range", ErrInvalidInput, b.Length, b.Width)
	}
	return nil
}
