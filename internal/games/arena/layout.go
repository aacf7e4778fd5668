package arena

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
)

// Tile is the kind of one arena grid cell.
type Tile uint8

const (
	TileFloor       Tile = iota // open floor that is never a spawn candidate
	TileEmpty                   // open floor where waves may spawn
	TileWall                    // blocks movement and shots
	TilePlayerSpawn             // open floor, player start
	TileEnemySpawn              // open floor, initial enemy
)

// Layout characters.
const (
	CharWall   = '#'
	CharPlayer = 'p'
	CharEnemy  = 'e'
	CharEmpty  = ' '
)

// Configuration errors reported by ParseLayout.
var (
	ErrEmptyLayout          = errors.New("arena: empty layout")
	ErrRaggedLayout         = errors.New("arena: layout rows differ in length")
	ErrNoPlayerSpawn        = errors.New("arena: layout has no player spawn")
	ErrMultiplePlayerSpawns = errors.New("arena: layout has more than one player spawn")
)

// Cell addresses a tile by column and row.
type Cell struct {
	Col, Row int
}

// Layout is a parsed arena map.
type Layout struct {
	Cols, Rows int
	Tiles      [][]Tile // row-major
	Player     Cell
	Enemies    []Cell // initial enemy markers in reading order
	Spawns     []Cell // empty cells in reading order
}

// ParseLayout parses the textual map format: one character per tile,
// rows separated by newlines. Leading and trailing blank lines are
// dropped; every remaining row must have the same width. Characters other
// than '#', 'p', 'e' and ' ' are open floor but never spawn candidates.
func ParseLayout(text string) (*Layout, error) {
	text = strings.Trim(text, "\r\n")
	if text == "" {
		return nil, ErrEmptyLayout
	}

	lines := strings.Split(text, "\n")
	l := &Layout{Rows: len(lines)}
	players := 0

	for row, line := range lines {
		runes := []rune(strings.TrimRight(line, "\r"))
		if row == 0 {
			l.Cols = len(runes)
			if l.Cols == 0 {
				return nil, ErrEmptyLayout
			}
		} else if len(runes) != l.Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRaggedLayout, row, len(runes), l.Cols)
		}

		tiles := make([]Tile, l.Cols)
		for col, ch := range runes {
			c := Cell{Col: col, Row: row}
			switch ch {
			case CharWall:
				tiles[col] = TileWall
			case CharPlayer:
				tiles[col] = TilePlayerSpawn
				if players > 0 {
					return nil, fmt.Errorf("%w: second one at row %d, column %d", ErrMultiplePlayerSpawns, row, col)
				}
				l.Player = c
				players++
			case CharEnemy:
				tiles[col] = TileEnemySpawn
				l.Enemies = append(l.Enemies, c)
			case CharEmpty:
				tiles[col] = TileEmpty
				l.Spawns = append(l.Spawns, c)
			default:
				tiles[col] = TileFloor
			}
		}
		l.Tiles = append(l.Tiles, tiles)
	}

	if players == 0 {
		return nil, ErrNoPlayerSpawn
	}
	return l, nil
}

// InBounds reports whether (col, row) addresses a tile.
func (l *Layout) InBounds(col, row int) bool {
	return col >= 0 && col < l.Cols && row >= 0 && row < l.Rows
}

// At returns the tile at (col, row). Out-of-range cells read as walls.
func (l *Layout) At(col, row int) Tile {
	if !l.InBounds(col, row) {
		return TileWall
	}
	return l.Tiles[row][col]
}

// Solid reports whether (col, row) stops a shot: walls and the outside.
func (l *Layout) Solid(col, row int) bool {
	return l.At(col, row) == TileWall
}

// String renders the layout back into map text.
func (l *Layout) String() string {
	var sb strings.Builder
	for row, tiles := range l.Tiles {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range tiles {
			switch t {
			case TileWall:
				sb.WriteRune(CharWall)
			case TilePlayerSpawn:
				sb.WriteRune(CharPlayer)
			case TileEnemySpawn:
				sb.WriteRune(CharEnemy)
			case TileEmpty:
				sb.WriteRune(CharEmpty)
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// LoadLayoutFile reads and parses a map file.
func LoadLayoutFile(p string) (*Layout, string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, "", fmt.Errorf("arena: read layout: %w", err)
	}
	l, err := ParseLayout(string(data))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", p, err)
	}
	return l, string(data), nil
}

//go:embed maps/*.txt
var mapFS embed.FS

// MapInfo describes a built-in map.
type MapInfo struct {
	ID    string
	Title string
	Text  string
}

var mapTitles = map[string]string{
	"warehouse":  "Warehouse",
	"pillars":    "Pillars",
	"crossroads": "Crossroads",
}

// BuiltinMaps returns the embedded maps sorted by ID.
func BuiltinMaps() []MapInfo {
	entries, err := mapFS.ReadDir("maps")
	if err != nil {
		panic(fmt.Sprintf("arena: embedded maps: %v", err))
	}
	maps := make([]MapInfo, 0, len(entries))
	for _, e := range entries {
		data, err := mapFS.ReadFile(path.Join("maps", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("arena: embedded map %s: %v", e.Name(), err))
		}
		id := strings.TrimSuffix(e.Name(), ".txt")
		title := mapTitles[id]
		if title == "" {
			title = id
		}
		maps = append(maps, MapInfo{ID: id, Title: title, Text: string(data)})
	}
	sort.Slice(maps, func(i, j int) bool { return maps[i].ID < maps[j].ID })
	return maps
}
