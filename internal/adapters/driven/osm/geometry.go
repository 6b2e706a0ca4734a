package osm

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// vertices returns the surface polygon stored after the fixed fields.
func (o *object) vertices() ([]r3.Vec, bool) {
	l := layoutOf(o.typ)
	start := len(l.fields)
	if len(l.group) != 3 || len(o.fields) < start+9 {
		return nil, false
	}

	var vs []r3.Vec
	for i := start; i+2 < len(o.fields); i += 3 {
		var xyz [3]float64
		for k := range xyz {
			f, err := strconv.ParseFloat(strings.TrimSpace(o.fields[i+k]), 64)
			if err != nil {
				return nil, false
			}
			xyz[k] = f
		}
		vs = append(vs, r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	return vs, len(vs) >= 3
}

// grossArea is the planar polygon area from Newell's method.
func (o *object) grossArea() (float64, bool) {
	vs, ok := o.vertices()
	if !ok {
		return 0, false
	}
	return polygonArea(vs), true
}

func polygonArea(vs []r3.Vec) float64 {
	var n r3.Vec
	for i, v := range vs {
		n = r3.Add(n, r3.Cross(v, vs[(i+1)%len(vs)]))
	}
	return r3.Norm(n) / 2
}
