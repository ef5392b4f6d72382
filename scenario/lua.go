package scenario

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"unicode/utf8"
	"wizardwar/game"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "wizardwar.Scenario"

// LoadFile runs the Lua script at path and returns the scenario it builds. The script must end
// with `return s` where s was created by Scenario.new.
func LoadFile(path string) (*Scenario, error) {
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	return run(state, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
}

// LoadString is LoadFile for a script held in memory.
func LoadString(name, source string) (*Scenario, error) {
	state := newState()
	if err := lua.LoadString(state, source); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	return run(state, name)
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)

	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{{Name: "new", Function: scenarioNew}}, 0)
	state.SetGlobal("Scenario")
	return state
}

func run(state *lua.State, fallbackName string) (*Scenario, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	s, ok := ud.(*Scenario)
	if !ok || s == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(s.Name) == "" {
		s.Name = fallbackName
	}
	if len(s.Players) < 2 {
		return nil, fmt.Errorf("scenario %s: need at least two players, got %d", s.Name, len(s.Players))
	}
	return s, nil
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	state.PushUserData(newScenario(name))
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "tree", Function: scenarioTree},
	{Name: "weapon", Function: scenarioWeapon},
	{Name: "player", Function: scenarioPlayer},
	{Name: "moves", Function: scenarioMoves},
	{Name: "choices", Function: scenarioChoices},
	{Name: "pickups", Function: scenarioPickups},
	{Name: "expect_winner", Function: scenarioExpectWinner},
	{Name: "expect_rounds", Function: scenarioExpectRounds},
	{Name: "expect_weapons", Function: scenarioExpectWeapons},
	{Name: "expect_position", Function: scenarioExpectPosition},
	{Name: "expect_eliminated", Function: scenarioExpectEliminated},
	{Name: "expect_cell", Function: scenarioExpectCell},
}

// s:tree(row, col)
func scenarioTree(state *lua.State) int {
	s := checkScenario(state)
	s.Trees = append(s.Trees, checkPosition(state, 2))
	return 0
}

// s:weapon(kind, row, col)
func scenarioWeapon(state *lua.State) int {
	s := checkScenario(state)
	kind := checkWeaponKind(state, 2, lua.CheckString(state, 2))
	s.Weapons = append(s.Weapons, WeaponSetup{Kind: kind, Pos: checkPosition(state, 3)})
	return 0
}

// s:player(name, {symbol = "1", row = 0, col = 0, weapons = {"Sword"}})
func scenarioPlayer(state *lua.State) int {
	s := checkScenario(state)
	name := lua.CheckString(state, 2)
	lua.CheckType(state, 3, lua.TypeTable)
	if s.hasPlayer(name) {
		lua.ArgumentError(state, 2, fmt.Sprintf("player %s already defined", name))
	}
	opts := tableToMap(state, 3)

	setup := PlayerSetup{Name: name, Symbol: rune('1' + len(s.Players))}
	if sym, ok := opts["symbol"].(string); ok && sym != "" {
		setup.Symbol, _ = utf8.DecodeRuneInString(sym)
	}
	row, rowOK := opts["row"].(int)
	col, colOK := opts["col"].(int)
	if !rowOK || !colOK {
		lua.ArgumentError(state, 3, "integer row and col expected")
	}
	setup.Pos = game.Position{Row: row, Col: col}
	if !setup.Pos.InBounds() {
		lua.ArgumentError(state, 3, fmt.Sprintf("position %s is off the board", setup.Pos))
	}
	setup.Weapons = weaponKinds(state, 3, opts["weapons"])

	s.Players = append(s.Players, setup)
	return 0
}

// s:moves(name, "U", "R", ...)
func scenarioMoves(state *lua.State) int {
	s := checkScenario(state)
	sc := s.script(lua.CheckString(state, 2))
	for i := 3; i <= state.Top(); i++ {
		dir, err := game.ParseDirection(lua.CheckString(state, i))
		if err != nil {
			lua.ArgumentError(state, i, err.Error())
		}
		sc.Moves = append(sc.Moves, dir)
	}
	return 0
}

// s:choices(name, 1, 0, ...)
func scenarioChoices(state *lua.State) int {
	s := checkScenario(state)
	sc := s.script(lua.CheckString(state, 2))
	for i := 3; i <= state.Top(); i++ {
		n := lua.CheckInteger(state, i)
		if n < 0 {
			lua.ArgumentError(state, i, "weapon numbers start at 1, 0 fights unarmed")
		}
		sc.Choices = append(sc.Choices, n)
	}
	return 0
}

// s:pickups(name, true, false, ...)
func scenarioPickups(state *lua.State) int {
	s := checkScenario(state)
	sc := s.script(lua.CheckString(state, 2))
	for i := 3; i <= state.Top(); i++ {
		lua.CheckType(state, i, lua.TypeBoolean)
		sc.Pickups = append(sc.Pickups, state.ToBoolean(i))
	}
	return 0
}

func scenarioExpectWinner(state *lua.State) int {
	s := checkScenario(state)
	s.Expect.Winner = lua.CheckString(state, 2)
	return 0
}

func scenarioExpectRounds(state *lua.State) int {
	s := checkScenario(state)
	n := lua.CheckInteger(state, 2)
	s.Expect.Rounds = &n
	return 0
}

// s:expect_weapons(name, {"Fireball", "Sword"}) checks the inventory in acquisition order.
func scenarioExpectWeapons(state *lua.State) int {
	s := checkScenario(state)
	name := lua.CheckString(state, 2)
	lua.CheckType(state, 3, lua.TypeTable)
	kinds := weaponKinds(state, 3, tableToGo(state, 3))
	if kinds == nil {
		kinds = []game.WeaponKind{}
	}
	s.Expect.Weapons[name] = kinds
	return 0
}

func scenarioExpectPosition(state *lua.State) int {
	s := checkScenario(state)
	name := lua.CheckString(state, 2)
	s.Expect.Positions[name] = checkPosition(state, 3)
	return 0
}

func scenarioExpectEliminated(state *lua.State) int {
	s := checkScenario(state)
	s.Expect.Eliminated = append(s.Expect.Eliminated, lua.CheckString(state, 2))
	return 0
}

// s:expect_cell(row, col, glyph) where glyph is ".", "T", "W" or a player symbol.
func scenarioExpectCell(state *lua.State) int {
	s := checkScenario(state)
	pos := checkPosition(state, 2)
	glyph := lua.CheckString(state, 4)
	if utf8.RuneCountInString(glyph) != 1 {
		lua.ArgumentError(state, 4, "single character expected")
	}
	r, _ := utf8.DecodeRuneInString(glyph)
	s.Expect.Cells[pos] = r
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if s, ok := ud.(*Scenario); ok && s != nil {
		return s
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

// checkPosition reads a row at index and a column at index+1.
func checkPosition(state *lua.State, index int) game.Position {
	pos := game.Position{Row: lua.CheckInteger(state, index), Col: lua.CheckInteger(state, index+1)}
	if !pos.InBounds() {
		lua.ArgumentError(state, index, fmt.Sprintf("position %s is off the board", pos))
	}
	return pos
}

func checkWeaponKind(state *lua.State, index int, name string) game.WeaponKind {
	kind, err := game.ParseWeaponKind(name)
	if err != nil {
		lua.ArgumentError(state, index, err.Error())
	}
	return kind
}

// weaponKinds converts a list of weapon names, or a single name, read from the argument at index.
func weaponKinds(state *lua.State, index int, value any) []game.WeaponKind {
	var names []any
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		names = []any{v}
	case []any:
		names = v
	case map[string]any:
		if len(v) > 0 {
			lua.ArgumentError(state, index, "weapon list expected")
		}
		return nil
	default:
		lua.ArgumentError(state, index, "weapon list expected")
	}

	kinds := make([]game.WeaponKind, 0, len(names))
	for _, n := range names {
		name, ok := n.(string)
		if !ok {
			lua.ArgumentError(state, index, "weapon names must be strings")
		}
		kinds = append(kinds, checkWeaponKind(state, index, name))
	}
	return kinds
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		if math.Mod(value, 1) == 0 {
			return int(value)
		}
		return value
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

// tableToGo returns a []any for sequences and a map[string]any for everything else. An empty
// table comes back as an empty map.
func tableToGo(state *lua.State, index int) any {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}
	return tableToMap(state, index)
}
