// Package lighting copies lighting fixtures, daylighting controls and the
// lighting EMS objects from the reference model.
//
// A paired space is swapped when its daylighting-control count differs
// from its reference space. Swapped spaces lose their own fixtures and
// controls and receive copies of the fixtures of the reference space's
// space type, on a schedule looked up by name in the actual model. Once
// any space has been swapped, the EMS sensors, actuators, variables,
// programs and calling managers selected by token are copied too.
package lighting

import (
	"context"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/logger"
	"github.com/custodia-labs/osmswap/internal/matching"
	"github.com/custodia-labs/osmswap/internal/transplant"
)

// Verify interface compliance.
var _ driven.Swapper = (*Swapper)(nil)

// Defaults.
const (
	DefaultSchedule    = "OfficeMedium BLDG_LIGHT_SCH_2013"
	DefaultSensorToken = "Lights"
	DefaultNameToken   = "Light"
)

// Swapper implements the lighting swap.
type Swapper struct {
	schedule    string
	sensorToken string
	nameToken   string
	policy      domain.InsertionPolicy
}

// Option configures the swapper.
type Option func(*Swapper)

// WithSchedule names the actual-model schedule given to copied fixtures.
func WithSchedule(name string) Option {
	return func(s *Swapper) {
		if name != "" {
			s.schedule = name
		}
	}
}

// WithSensorToken sets the token matched against EMS sensor variables and
// actuator component types.
func WithSensorToken(token string) Option {
	return func(s *Swapper) {
		if token != "" {
			s.sensorToken = token
		}
	}
}

// WithNameToken sets the token matched against EMS object names.
func WithNameToken(token string) Option {
	return func(s *Swapper) {
		if token != "" {
			s.nameToken = token
		}
	}
}

// WithInsertionPolicy sets what happens when a copy is rejected.
func WithInsertionPolicy(p domain.InsertionPolicy) Option {
	return func(s *Swapper) {
		if p.IsValid() {
			s.policy = p
		}
	}
}

// New creates a lighting swapper.
func New(opts ...Option) *Swapper {
	s := &Swapper{
		schedule:    DefaultSchedule,
		sensorToken: DefaultSensorToken,
		nameToken:   DefaultNameToken,
		policy:      domain.InsertionFailFast,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the swapper name.
func (s *Swapper) Name() string {
	return domain.SwapLighting
}

// run carries the state of one Swap call.
type run struct {
	*Swapper
	source, target driven.ModelDocument
	report         *domain.StepReport
	schedule       driven.ModelObject
}

// Swap applies the lighting swap to every paired space, then the EMS pass.
func (s *Swapper) Swap(ctx context.Context, source, target driven.ModelDocument) (domain.StepReport, error) {
	report := domain.StepReport{Swapper: s.Name()}
	r := &run{Swapper: s, source: source, target: target, report: &report}

	pairs, err := matching.MatchSpaces(source, target)
	if err != nil {
		return report, err
	}

	swapped := 0
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		refCount := len(p.Source.Children(domain.TypeDaylighting))
		if refCount == len(p.Target.Children(domain.TypeDaylighting)) {
			report.Skipped = append(report.Skipped, p.Target.Name())
			continue
		}
		if err := r.space(p); err != nil {
			return report, err
		}
		swapped++
	}

	if swapped == 0 {
		logger.Debug("No space needed a lighting swap, skipping EMS")
		return report, nil
	}
	if err := r.ems(ctx); err != nil {
		return report, err
	}
	return report, nil
}

// lightSchedule resolves the fixture schedule on first use.
func (r *run) lightSchedule() (driven.ModelObject, error) {
	if r.schedule != nil {
		return r.schedule, nil
	}
	sched, ok := r.target.ObjectByName(domain.TypeSchedule, r.Swapper.schedule)
	if !ok {
		sched, ok = r.target.ObjectByName(domain.TypeScheduleConst, r.Swapper.schedule)
	}
	if !ok {
		return nil, &domain.InitError{Object: "actual model", Attribute: "schedule " + r.Swapper.schedule}
	}
	r.schedule = sched
	return sched, nil
}

func (r *run) space(p matching.Pair) error {
	spaceType, err := transplant.RequireRef(p.Source, domain.FieldSpaceType)
	if err != nil {
		return err
	}

	for _, old := range p.Target.Children(domain.TypeLights) {
		logger.Debug("Removing %s from space: %s", old.Name(), p.Target.Name())
		if err := old.Remove(); err != nil {
			return err
		}
	}

	for _, fixture := range spaceType.Children(domain.TypeLights) {
		copied, ok, err := r.copy(fixture)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := copied.SetParent(p.Target); err != nil {
			return err
		}
		sched, err := r.lightSchedule()
		if err != nil {
			return err
		}
		if err := copied.SetRef(domain.FieldSchedule, sched); err != nil {
			return err
		}
		logger.Info("Added %s to space: %s", copied.Name(), p.Target.Name())
		r.report.Applied++
	}

	for _, ctrl := range p.Source.Children(domain.TypeDaylighting) {
		copied, ok, err := r.copy(ctrl)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := copied.SetParent(p.Target); err != nil {
			return err
		}
		logger.Info("Added %s to space: %s", copied.Name(), p.Target.Name())
		r.report.Applied++
	}

	return nil
}

// copy transplants obj under the insertion policy. A skipped object
// returns ok false and no error.
func (r *run) copy(obj driven.ModelObject) (driven.ModelObject, bool, error) {
	copied, err := transplant.Transplant(r.source, r.target, obj)
	if transplant.Skippable(r.policy, err) {
		logger.Warn("Skipping %s: %v", transplant.Describe(obj), err)
		r.report.Skipped = append(r.report.Skipped, transplant.Describe(obj))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return copied, true, nil
}

// ems copies the lighting EMS objects.
func (r *run) ems(ctx context.Context) error {
	logger.Section("Lighting EMS")

	selections := []struct {
		typ   string
		field string
		token string
	}{
		{domain.TypeEMSSensor, domain.FieldEMSOutputVariable, r.sensorToken},
		{domain.TypeEMSActuator, domain.FieldEMSActuatedType, r.sensorToken},
		{domain.TypeEMSGlobalVariable, domain.FieldName, r.nameToken},
		{domain.TypeEMSInternalVariable, domain.FieldName, r.nameToken},
		{domain.TypeEMSProgram, domain.FieldName, r.nameToken},
	}

	for _, sel := range selections {
		for _, obj := range r.source.Objects(sel.typ) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if v, _ := obj.String(sel.field); !strings.Contains(v, sel.token) {
				continue
			}
			copied, ok, err := r.copy(obj)
			if err != nil {
				return err
			}
			if ok {
				logger.Info("Added %s: %s", sel.typ, copied.Name())
				r.report.Applied++
			}
		}
	}

	for _, pcm := range r.source.Objects(domain.TypeEMSProgramCallingMgr) {
		if !strings.Contains(pcm.Name(), r.nameToken) {
			continue
		}
		if err := r.callingManager(pcm); err != nil {
			return err
		}
	}
	return nil
}

// callingManager copies pcm and re-links its first program, which a
// component copy does not carry.
func (r *run) callingManager(pcm driven.ModelObject) error {
	copied, ok, err := r.copy(pcm)
	if err != nil || !ok {
		return err
	}

	programs := pcm.ListRefs(domain.GroupEMSPrograms)
	if len(programs) > 0 {
		program, ok, err := r.copy(programs[0])
		if err != nil {
			return err
		}
		if ok {
			if len(copied.ListRefs(domain.GroupEMSPrograms)) > 0 {
				if err := copied.EraseListRef(domain.GroupEMSPrograms, 0); err != nil {
					return err
				}
			}
			if err := copied.AppendListRef(domain.GroupEMSPrograms, program); err != nil {
				return err
			}
		}
	}

	logger.Info("Added %s: %s", domain.TypeEMSProgramCallingMgr, copied.Name())
	r.report.Applied++
	return nil
}
