// Package script lets users override entity display values from Lua.
//
//	stixpick.display("Report", function(e)
//	  return e.name .. " (" .. (e.created_by or "?") .. ")"
//	end)
//
// A function returning nil leaves the built-in value in place.
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/stixpick/entity"
)

// FileName is the script looked up in the config directory.
const FileName = "display.lua"

const cacheSize = 4096

type result struct {
	value string
	ok    bool
}

// Engine wraps a gopher-lua state holding the registered overrides.
type Engine struct {
	mu    sync.Mutex
	L     *glua.LState
	rules map[entity.Type]*glua.LFunction
	cache *lru.Cache[string, result]
	log   zerolog.Logger
}

// NewEngine creates an initialized engine.
func NewEngine(log zerolog.Logger) *Engine {
	e := &Engine{log: log}
	e.Init()
	return e
}

// Init (re)creates the Lua state and drops every registered override.
func (e *Engine) Init() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.L != nil {
		e.L.Close()
	}
	e.L = glua.NewState()
	e.rules = make(map[entity.Type]*glua.LFunction)
	cache, _ := lru.New[string, result](cacheSize)
	e.cache = cache

	tbl := e.L.NewTable()
	e.L.SetGlobal("stixpick", tbl)

	// stixpick.display(entity_type, fn)
	e.L.SetField(tbl, "display", e.L.NewFunction(func(L *glua.LState) int {
		t := L.CheckString(1)
		fn := L.CheckFunction(2)
		e.rules[entity.Type(t)] = fn
		return 0
	}))
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// DoString executes Lua code. The name is used in error messages.
func (e *Engine) DoString(name, code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	e.L.Push(fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	e.cache.Purge()
	return nil
}

// LoadDir runs FileName from dir. A missing file is not an error.
func (e *Engine) LoadDir(dir string) error {
	path := filepath.Join(dir, FileName)
	code, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return e.DoString(path, string(code))
}

// Rules returns the number of registered overrides.
func (e *Engine) Rules() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.rules)
}

// DisplayValue implements entity.Override. Results are cached per entity.
func (e *Engine) DisplayValue(en entity.Entity) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.L == nil {
		return "", false
	}
	fn, ok := e.rules[en.Type]
	if !ok {
		return "", false
	}
	k := string(en.Type) + "/" + en.ID
	if r, ok := e.cache.Get(k); ok {
		return r.value, r.ok
	}

	r := e.call(fn, en)
	e.cache.Add(k, r)
	return r.value, r.ok
}

func (e *Engine) call(fn *glua.LFunction, en entity.Entity) result {
	L := e.L
	L.Push(fn)
	L.Push(toTable(L, en))
	if err := L.PCall(1, 1, nil); err != nil {
		e.log.Warn().Err(err).Str("entity_type", string(en.Type)).Msg("display override failed")
		return result{}
	}
	ret := L.Get(-1)
	L.Pop(1)

	switch v := ret.(type) {
	case glua.LString:
		return result{value: string(v), ok: true}
	case *glua.LNilType:
		return result{}
	case glua.LBool:
		return result{}
	default:
		return result{value: v.String(), ok: true}
	}
}

// toTable exposes the entity fields to Lua. Absent fields are nil.
func toTable(L *glua.LState, en entity.Entity) *glua.LTable {
	t := L.NewTable()
	set := func(k, v string) {
		if v != "" {
			L.SetField(t, k, glua.LString(v))
		}
	}
	set("id", en.ID)
	set("standard_id", en.StandardID)
	set("entity_type", string(en.Type))
	set("name", en.Name)
	set("description", en.Description)
	set("x_mitre_id", en.XMitreID)
	set("attribute_abstract", en.AttributeAbstract)
	set("content", en.Content)
	set("opinion", en.Opinion)
	set("result_name", en.ResultName)
	set("observable_value", en.ObservableValue)
	set("observable_name", en.ObservableName)
	set("x_opencti_description", en.XOpenCTIDescription)
	set("default", entity.DisplayValue(en))
	if name, ok := entity.CreatorName(en); ok {
		set("created_by", name)
	}

	labels := L.NewTable()
	for _, l := range entity.Labels(en) {
		labels.Append(glua.LString(l.Value))
	}
	L.SetField(t, "labels", labels)

	markings := L.NewTable()
	for _, m := range entity.Markings(en) {
		markings.Append(glua.LString(m.Definition))
	}
	L.SetField(t, "markings", markings)
	return t
}

var _ entity.Override = (*Engine)(nil)
