package osm

const floorModel = `
OS:Version,
  {v-1},                                  !- Handle
  3.4.0;                                  !- Version Identifier

OS:Material,
  {m-1}, Concrete, MediumRough, 0.1, 1.7, 2400, 900, 0.9, 0.7, 0.7;

OS:Construction,
  {c-1}, Floor Construction, , {m-1};

OS:StandardsInformation:Construction,
  {si-1}, {c-1}, Floor;

OS:Space,
  {s-1}, Core_ZN;

! ground floor
OS:Surface,
  {f-1},                                  !- Handle
  Core_ZN_Floor,                          !- Name
  Floor,                                  !- Surface Type
  {c-1},                                  !- Construction Name
  {s-1},                                  !- Space Name
  Ground, , NoSun, NoWind, , 4,
  0, 0, 0,
  0, 10, 0,
  10, 10, 0,
  10, 0, 0;
`

const lightsModel = `
OS:ScheduleTypeLimits,
  {tl-1}, Fractional, 0, 1, Continuous;

OS:Schedule:Day,
  {sd-1}, Office Light Day, {tl-1}, No, 24, 0, 0.9;

OS:Schedule:Ruleset,
  {sr-1}, Office Light, {tl-1}, {sd-1};

OS:Schedule:Rule,
  {ru-1}, Office Light Rule, {sr-1}, 0, {sd-1}, Yes;

OS:Lights:Definition,
  {ld-1}, Office Lights Def, Watts/Area, , 8.5;

OS:Space,
  {s-1}, Perimeter_ZN_1;

OS:Lights,
  {l-1}, Office Lights, {ld-1}, {s-1}, {sr-1};
`
