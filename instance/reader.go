package instance

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
)

// Reader reads a mps file to construct a model
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// ConstructModelFromFile returns the problem described by the free-format MPS file.
// Double-bounded rows become two constraints, positive lower and finite upper column
// bounds become extra constraints. Columns with a negative lower bound are rejected.
func (r *Reader) ConstructModelFromFile() (*model.Problem, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "reading %s failed", r.filename)
	}

	sense := model.Minimize
	if lp.ObjDir() == glpk.MAX {
		sense = model.Maximize
	}
	name := lp.ProbName()
	if name == "" {
		name = r.filename
	}
	p := model.NewProblem(name, sense)

	//populate obj function
	for c := 1; c <= lp.NumCols(); c++ {
		if err := p.AddVariable(lp.ColName(c), lp.ObjCoef(c)); err != nil {
			return nil, err
		}
	}

	//populate constraints
	for row := 1; row <= lp.NumRows(); row++ {
		rowVec := make([]float64, lp.NumCols())
		idxs, vals := lp.MatRow(row)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = vals[i]
		}

		lb, ub := lp.RowLB(row), lp.RowUB(row)
		rowName := lp.RowName(row)
		var err error
		switch {
		case lb == -math.MaxFloat64 && ub == math.MaxFloat64:
			logrus.WithField("row", rowName).Debug("skipping free row")
		case lb == -math.MaxFloat64:
			err = p.AddConstraint(rowName, rowVec, model.LessEqual, ub)
		case ub == math.MaxFloat64:
			err = p.AddConstraint(rowName, rowVec, model.GreaterEqual, lb)
		case lb == ub:
			err = p.AddConstraint(rowName, rowVec, model.Equal, lb)
		default:
			err = p.AddConstraint(rowName+"_lo", rowVec, model.GreaterEqual, lb)
			if err == nil {
				err = p.AddConstraint(rowName+"_up", rowVec, model.LessEqual, ub)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	//column bounds
	for c := 1; c <= lp.NumCols(); c++ {
		lb, ub := lp.ColLB(c), lp.ColUB(c)
		colName := lp.ColName(c)
		if lb < 0 {
			return nil, errors.Wrapf(model.ErrInvalidProblem, "column %s: negative lower bound %g is not supported", colName, lb)
		}

		rowVec := make([]float64, lp.NumCols())
		rowVec[c-1] = 1
		if lb > 0 {
			if err := p.AddConstraint(colName+"_lb", rowVec, model.GreaterEqual, lb); err != nil {
				return nil, err
			}
		}
		if ub != math.MaxFloat64 {
			if err := p.AddConstraint(colName+"_ub", rowVec, model.LessEqual, ub); err != nil {
				return nil, err
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"file":        r.filename,
		"variables":   p.NumVars(),
		"constraints": p.NumRows(),
	}).Debug("model constructed")
	return p, p.Validate()
}
