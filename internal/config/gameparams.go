package config

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	MinSide      = 8
	MaxSide      = 200
	MinMineCount = 10
)

var DefaultGameParams = mines.GameParams{Width: 8, Height: 8, MineCount: 10}

var ErrUsage = errors.New("usage: minesweeper [width height mine_count]")

type GameParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func decodeGameParams(src map[string][]string) (GameParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto GameParams
	err := dec.Decode(&dto, src)
	return dto, err
}

// ParseGameParams reads the positional width, height and mine count.
// No arguments selects the 8x8 board with 10 mines.
func ParseGameParams(args []string) (mines.GameParams, error) {
	if len(args) == 0 {
		return DefaultGameParams, nil
	}
	if len(args) != 3 {
		return mines.GameParams{}, ErrUsage
	}

	dto, err := decodeGameParams(map[string][]string{
		"width":      {args[0]},
		"height":     {args[1]},
		"mine_count": {args[2]},
	})
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("cannot parse game params: %w", err)
	}

	params := mines.GameParams(dto)
	if err := ValidateGameParams(params); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}

func ValidateGameParams(p mines.GameParams) error {
	if p.Width < MinSide || p.Width > MaxSide ||
		p.Height < MinSide || p.Height > MaxSide ||
		p.MineCount < MinMineCount {
		return fmt.Errorf(
			"invalid parameters: width: %d, height: %d, mine count: %d "+
				"(%d <= width, height <= %d, mine count >= %d)",
			p.Width, p.Height, p.MineCount, MinSide, MaxSide, MinMineCount,
		)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
