// Package airloop copies air-loop economizer and availability settings.
//
// The first reference air loop is taken as representative: its outdoor-air
// economizer control type is written to every actual outdoor-air
// controller, and its availability schedule is copied once and shared by
// every actual air loop.
package airloop

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/logger"
	"github.com/custodia-labs/osmswap/internal/transplant"
)

// Verify interface compliance.
var _ driven.Swapper = (*Swapper)(nil)

// Swapper implements the air-loop swap.
type Swapper struct{}

// New creates an air-loop swapper.
func New() *Swapper {
	return &Swapper{}
}

// Name returns the swapper name.
func (s *Swapper) Name() string {
	return domain.SwapAirLoop
}

// Swap applies the representative settings to every actual air loop.
func (s *Swapper) Swap(ctx context.Context, source, target driven.ModelDocument) (domain.StepReport, error) {
	report := domain.StepReport{Swapper: s.Name()}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	loops := target.Objects(domain.TypeAirLoop)
	if len(loops) == 0 {
		logger.Debug("No air loops in actual model")
		return report, nil
	}

	refLoops := source.Objects(domain.TypeAirLoop)
	if len(refLoops) == 0 {
		return report, &domain.InitError{Object: "reference model", Attribute: domain.TypeAirLoop}
	}
	ref := refLoops[0]

	economizer, err := economizerType(source, ref)
	if err != nil {
		return report, err
	}
	refSchedule, err := transplant.RequireRef(ref, domain.FieldAvailabilitySchedule)
	if err != nil {
		return report, err
	}
	schedule, err := transplant.Transplant(source, target, refSchedule)
	if err != nil {
		return report, err
	}

	for _, loop := range loops {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if oa, ok := outdoorAirSystem(target, loop); ok {
			ctrl, err := transplant.RequireRef(oa, domain.FieldOutdoorAirController)
			if err != nil {
				return report, err
			}
			if err := ctrl.SetString(domain.FieldEconomizerControlType, economizer); err != nil {
				return report, err
			}
			logger.Info("%s economizer: %s", loop.Name(), economizer)
		} else {
			logger.Warn("Air loop %s has no outdoor air system", loop.Name())
			report.Skipped = append(report.Skipped, loop.Name())
		}

		if err := loop.SetRef(domain.FieldAvailabilitySchedule, schedule); err != nil {
			return report, err
		}
		logger.Info("%s availability: %s", loop.Name(), schedule.Name())
		report.Applied++
	}

	return report, nil
}

// economizerType reads the economizer control type of loop's outdoor-air
// controller.
func economizerType(doc driven.ModelDocument, loop driven.ModelObject) (string, error) {
	oa, ok := outdoorAirSystem(doc, loop)
	if !ok {
		return "", &domain.InitError{Object: loop.Name(), Attribute: domain.TypeOutdoorAirSys}
	}
	ctrl, err := transplant.RequireRef(oa, domain.FieldOutdoorAirController)
	if err != nil {
		return "", err
	}
	return transplant.RequireString(ctrl, domain.FieldEconomizerControlType)
}

// outdoorAirSystem finds the outdoor-air system whose nearest air loop on
// the connection graph is loop.
func outdoorAirSystem(doc driven.ModelDocument, loop driven.ModelObject) (driven.ModelObject, bool) {
	for _, oa := range doc.Objects(domain.TypeOutdoorAirSys) {
		if owner, ok := doc.Connected(oa, domain.TypeAirLoop); ok && owner.Handle() == loop.Handle() {
			return oa, true
		}
	}
	return nil, false
}
