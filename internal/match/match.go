// Package match runs a headless chase: one scripted groomer against an AI cat
// and an AI dog, stepped on a fixed tick.
package match

import (
	"context"
	"log"
	"sort"

	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/dice"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/events"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/scoring"
	"github.com/KirkDiggler/pet-groomer/internal/skillmanager"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
	"github.com/KirkDiggler/pet-groomer/internal/station"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
	"github.com/KirkDiggler/pet-groomer/internal/uuid"
	"github.com/KirkDiggler/pet-groomer/internal/world"
)

var (
	groomerSpawn = geom.V(0, 0, 0)
	catSpawn     = geom.V(6, 0, 8)
	dogSpawn     = geom.V(-6, 0, 8)
	stationSpawn = geom.V(0, 0, -10)
)

type pet struct {
	pawn       *actor.Pawn
	controller *skillmanager.Controller
	groomed    bool
}

// Match owns every collaborator of one chase. It is single threaded; run
// separate matches on separate goroutines.
type Match struct {
	id       string
	seed     int64
	opts     Options
	settings Settings

	world    *world.World
	resolver *targeting.Resolver
	stations *station.Registry
	station  *station.Station
	board    *scoring.Board
	bus      *events.Bus
	recorder *events.Recorder
	roller   dice.Roller

	groomer       *actor.Pawn
	groomerSkills *skillmanager.Manager
	cat           *pet
	dog           *pet

	elapsed      float64
	groomerThink float64
	// grooming counts down while the groomer works at the station
	grooming   float64
	isGrooming bool
	extraSteps int
	groomed    []string
	ended      bool
}

// New builds a match and spawns its actors
func New(opts Options) (*Match, error) {
	if err := opts.validate(); err != nil {
		return nil, apperr.Wrap(err, "invalid match options")
	}

	ids := opts.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	id := opts.ID
	if id == "" {
		id = ids.New()
	}

	m := &Match{
		id:       id,
		seed:     opts.Seed,
		opts:     opts,
		settings: opts.Settings,
		world:    world.New(),
		stations: station.NewRegistry(),
		board:    scoring.NewBoard(),
		bus:      events.NewBus(),
		recorder: events.NewRecorder(),
		roller:   dice.NewSeededRoller(opts.Seed),
	}
	m.resolver = targeting.NewResolver(m.world)
	m.bus.SubscribeAll(m.recorder)
	if opts.Verbose {
		m.bus.SubscribeAll(events.NewLogListener("Match " + id))
	}

	m.station = station.New(ids.New(), stationSpawn, opts.Settings.StationBaseSteps)
	if err := m.stations.Add(m.station); err != nil {
		return nil, apperr.Wrap(err, "failed to place station")
	}

	if err := m.spawn(ids); err != nil {
		return nil, err
	}

	log.Printf("Match: %s created with seed %d", m.id, m.seed)
	return m, nil
}

func (m *Match) spawn(ids uuid.Generator) error {
	s := m.settings
	m.groomer = actor.NewPawn(actor.Config{ID: ids.New(), Species: actor.SpeciesGroomer, Position: groomerSpawn, Speed: s.GroomerSpeed})
	catPawn := actor.NewPawn(actor.Config{ID: ids.New(), Species: actor.SpeciesCat, Position: catSpawn, Speed: s.CatSpeed})
	dogPawn := actor.NewPawn(actor.Config{ID: ids.New(), Species: actor.SpeciesDog, Position: dogSpawn, Speed: s.DogSpeed})

	for _, p := range []*actor.Pawn{m.groomer, catPawn, dogPawn} {
		if err := m.world.Add(p, world.Collider{Radius: p.Radius()}); err != nil {
			return apperr.Wrapf(err, "failed to add %s to the world", p.ID())
		}
	}

	registry := skills.NewDefaultRegistry(m.opts.Skills)

	groomerManager, err := m.buildManager(registry, m.groomer)
	if err != nil {
		return err
	}
	m.groomerSkills = groomerManager

	m.cat, err = m.buildPet(registry, catPawn)
	if err != nil {
		return err
	}
	m.dog, err = m.buildPet(registry, dogPawn)
	if err != nil {
		return err
	}
	return nil
}

func (m *Match) buildManager(registry *skills.Registry, owner *actor.Pawn) (*skillmanager.Manager, error) {
	loadout, err := registry.BuildLoadout(skills.Deps{
		Owner:    owner,
		Resolver: m.resolver,
		Scorer:   m.board,
		Roller:   m.roller,
		Stations: m.stations,
		Bus:      m.bus,
	})
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to build loadout for %s", owner.ID())
	}
	return skillmanager.NewManager(owner, loadout, m.bus), nil
}

func (m *Match) buildPet(registry *skills.Registry, pawn *actor.Pawn) (*pet, error) {
	manager, err := m.buildManager(registry, pawn)
	if err != nil {
		return nil, err
	}
	engine, err := skillmanager.NewEngine(pawn.Species(), m.opts.Cat, m.opts.Dog)
	if err != nil {
		return nil, err
	}
	return &pet{
		pawn:       pawn,
		controller: skillmanager.NewController(manager, engine, m.roller, m.opts.Controller),
	}, nil
}

// ID returns the match ID
func (m *Match) ID() string { return m.id }

// Elapsed returns the simulated time so far
func (m *Match) Elapsed() float64 { return m.elapsed }

// IsOver reports whether the match has ended
func (m *Match) IsOver() bool { return m.ended }

// IsGrooming reports whether the groomer is working at the station
func (m *Match) IsGrooming() bool { return m.isGrooming }

func (m *Match) Groomer() *actor.Pawn                 { return m.groomer }
func (m *Match) Cat() *actor.Pawn                     { return m.cat.pawn }
func (m *Match) Dog() *actor.Pawn                     { return m.dog.pawn }
func (m *Match) GroomerSkills() *skillmanager.Manager { return m.groomerSkills }
func (m *Match) CatSkills() *skillmanager.Manager     { return m.cat.controller.Manager() }
func (m *Match) DogSkills() *skillmanager.Manager     { return m.dog.controller.Manager() }
func (m *Match) Station() *station.Station            { return m.station }
func (m *Match) World() *world.World                  { return m.world }
func (m *Match) Board() *scoring.Board                { return m.board }
func (m *Match) Recorder() *events.Recorder           { return m.recorder }

// Groomed returns the IDs of pets handed over at the station, in order
func (m *Match) Groomed() []string {
	return append([]string(nil), m.groomed...)
}

// Run steps the match at its tick rate until it ends or ctx is done
func (m *Match) Run(ctx context.Context) (*scoring.MatchResult, error) {
	dt := 1 / m.opts.TickRate
	for !m.ended {
		select {
		case <-ctx.Done():
			return nil, apperr.Wrapf(ctx.Err(), "match %s interrupted at %.2fs", m.id, m.elapsed)
		default:
		}
		m.Step(dt)
	}
	return m.Result(), nil
}

// Step advances the match by dt. Order: pawns, abilities, groomer, pets.
func (m *Match) Step(dt float64) {
	if m.ended || dt <= 0 {
		return
	}
	m.elapsed += dt

	m.groomer.Tick(dt)
	for _, p := range m.pets() {
		p.pawn.Tick(dt)
	}

	m.groomerSkills.Tick(dt)
	for _, p := range m.pets() {
		p.controller.Tick(dt)
	}

	m.stepGroomer(dt)
	for _, p := range m.pets() {
		m.stepPet(p, dt)
	}
	m.clampToArena()

	if m.allGroomed() || m.elapsed >= m.opts.Duration {
		m.finish()
	}
}

// Result summarizes the match so far
func (m *Match) Result() *scoring.MatchResult {
	species := map[string]string{
		m.groomer.ID(): string(m.groomer.Species()),
	}
	for _, p := range m.pets() {
		species[p.pawn.ID()] = string(p.pawn.Species())
	}

	result := scoring.NewMatchResult(m.id, m.seed, m.elapsed, species, m.board)
	result.Captured = m.Groomed()
	sort.Strings(result.Captured)
	result.ExtraSteps = m.extraSteps + m.station.ExtraSteps()
	result.GroomerWon = m.allGroomed()
	return result
}

func (m *Match) pets() []*pet {
	return []*pet{m.cat, m.dog}
}

func (m *Match) allGroomed() bool {
	for _, p := range m.pets() {
		if !p.groomed {
			return false
		}
	}
	return true
}

func (m *Match) finish() {
	m.ended = true
	detail := "time_up"
	if m.allGroomed() {
		detail = "groomer_won"
	}
	log.Printf("Match: %s ended after %.2fs (%s)", m.id, m.elapsed, detail)
	events.Publish(m.bus, &events.GameEvent{
		Type:    events.EventTypeMatchEnded,
		ActorID: m.groomer.ID(),
		Value:   m.elapsed,
		Detail:  detail,
	})
}

func (m *Match) clampToArena() {
	limit := m.settings.ArenaHalfExtent
	clamp := func(v float64) float64 {
		if v < -limit {
			return -limit
		}
		if v > limit {
			return limit
		}
		return v
	}
	for _, p := range []*actor.Pawn{m.groomer, m.cat.pawn, m.dog.pawn} {
		pos := p.Position()
		p.SetPosition(geom.V(clamp(pos.X), pos.Y, clamp(pos.Z)))
	}
}
