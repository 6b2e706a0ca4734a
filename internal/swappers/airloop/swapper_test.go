package airloop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/osmswap/internal/adapters/driven/osm"
	"github.com/custodia-labs/osmswap/internal/core/domain"
)

const reference = `
OS:ScheduleTypeLimits, {tl}, OnOff, 0, 1, Discrete;
OS:Schedule:Constant, {on}, Always On Discrete, {tl}, 1;
OS:Schedule:Constant, {hvac}, HVAC Operation Schedule, {tl}, 1;
OS:AirLoopHVAC, {al1}, VAV_1, , {hvac};
OS:AirLoopHVAC, {al2}, VAV_2, , {on};
OS:Controller:OutdoorAir, {c1}, VAV_1 OA Controller, , , , , autosize, autosize, DifferentialDryBulb;
OS:Controller:OutdoorAir, {c2}, VAV_2 OA Controller, , , , , autosize, autosize, NoEconomizer;
OS:AirLoopHVAC:OutdoorAirSystem, {oa2}, VAV_2 OA System, {c2};
OS:AirLoopHVAC:OutdoorAirSystem, {oa1}, VAV_1 OA System, {c1};
OS:Node, {n1}, VAV_1 Mixed Air Node;
OS:Node, {n2}, VAV_2 Mixed Air Node;
OS:Connection, {x1}, , {al1}, 9, {n1}, 2;
OS:Connection, {x2}, , {n1}, 3, {oa1}, 5;
OS:Connection, {x3}, , {al2}, 9, {n2}, 2;
OS:Connection, {x4}, , {n2}, 3, {oa2}, 5;
`

const actual = `
OS:ScheduleTypeLimits, {tl}, OnOff, 0, 1, Discrete;
OS:Schedule:Constant, {on}, Always On Discrete, {tl}, 1;
OS:AirLoopHVAC, {b1}, Loop A, , {on};
OS:AirLoopHVAC, {b2}, Loop B, , {on};
OS:AirLoopHVAC, {b3}, Loop C, , {on};
OS:Controller:OutdoorAir, {d1}, Loop A OA Controller, , , , , autosize, autosize, NoEconomizer;
OS:Controller:OutdoorAir, {d2}, Loop B OA Controller, , , , , autosize, autosize, NoEconomizer;
OS:AirLoopHVAC:OutdoorAirSystem, {p1}, Loop A OA System, {d1};
OS:AirLoopHVAC:OutdoorAirSystem, {p2}, Loop B OA System, {d2};
OS:Connection, {y1}, , {b1}, 9, {p1}, 5;
OS:Connection, {y2}, , {p2}, 5, {b2}, 9;
`

func parse(t *testing.T, s string) *osm.Document {
	t.Helper()
	doc, err := osm.ParseString(s)
	require.NoError(t, err)
	return doc
}

func TestSwap(t *testing.T) {
	source, target := parse(t, reference), parse(t, actual)

	report, err := New().Swap(context.Background(), source, target)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Applied)
	assert.Equal(t, []string{"Loop C"}, report.Skipped)

	for _, h := range []string{"{d1}", "{d2}"} {
		ctrl, _ := target.Object(h)
		econ, _ := ctrl.String(domain.FieldEconomizerControlType)
		assert.Equal(t, "DifferentialDryBulb", econ, "economizer taken from the first reference loop")
	}

	var shared string
	for _, loop := range target.Objects(domain.TypeAirLoop) {
		sched, ok := loop.Ref(domain.FieldAvailabilitySchedule)
		require.True(t, ok)
		assert.Equal(t, "HVAC Operation Schedule", sched.Name())
		if shared == "" {
			shared = sched.Handle()
		}
		assert.Equal(t, shared, sched.Handle(), "one schedule shared by every loop")
	}

	assert.Len(t, target.Objects(domain.TypeScheduleConst), 2)
	assert.Len(t, target.Objects("OS:ScheduleTypeLimits"), 1, "type limits reused")
}

func TestSwap_NoTargetLoops(t *testing.T) {
	source, target := parse(t, reference), parse(t, "OS:Space, {s}, A;")

	report, err := New().Swap(context.Background(), source, target)
	require.NoError(t, err)
	assert.Zero(t, report.Applied)
	assert.Empty(t, target.Objects(domain.TypeScheduleConst))
}

func TestSwap_ReferenceErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"no reference loop", "OS:Space, {s}, A;"},
		{"no outdoor air system", "OS:Schedule:Constant, {on}, On, , 1;\nOS:AirLoopHVAC, {al}, VAV, , {on};"},
		{
			"no availability schedule",
			`OS:AirLoopHVAC, {al}, VAV;
OS:Controller:OutdoorAir, {c}, Ctrl, , , , , , , FixedDryBulb;
OS:AirLoopHVAC:OutdoorAirSystem, {oa}, OA, {c};
OS:Connection, {x}, , {al}, 1, {oa}, 2;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Swap(context.Background(), parse(t, tt.source), parse(t, actual))
			assert.ErrorIs(t, err, domain.ErrUnsetOptional)
		})
	}
}
