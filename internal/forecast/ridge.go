package forecast

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ridgeFit solves the L2-regularized least squares problem via the normal
// equations with a diagonal regularization term:
//
//	(Xcᵀ Xc + αI) w = Xcᵀ yc
//
// Columns and the target are centered first so the intercept is not
// penalized; the intercept is recovered from the column means. With α > 0
// the system is symmetric positive definite even when a feature column has
// zero variance, so a Cholesky solve is always well defined.
func ridgeFit(rows [][]float64, y []float64, alpha float64) (coefs []float64, intercept float64, err error) {
	n := len(rows)
	if n == 0 || n != len(y) {
		return nil, 0, fmt.Errorf("ridge: bad shapes (%d rows, %d targets)", n, len(y))
	}
	d := len(rows[0])

	colMeans := make([]float64, d)
	for _, row := range rows {
		for j, v := range row {
			colMeans[j] += v
		}
	}
	for j := range colMeans {
		colMeans[j] /= float64(n)
	}
	yMean := 0.0
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	xc := mat.NewDense(n, d, nil)
	yc := mat.NewVecDense(n, nil)
	for i, row := range rows {
		for j, v := range row {
			xc.Set(i, j, v-colMeans[j])
		}
		yc.SetVec(i, y[i]-yMean)
	}

	gram := mat.NewSymDense(d, nil)
	var xtx mat.Dense
	xtx.Mul(xc.T(), xc)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			v := xtx.At(i, j)
			if i == j {
				v += alpha
			}
			gram.SetSym(i, j, v)
		}
	}

	var xty mat.VecDense
	xty.MulVec(xc.T(), yc)

	var chol mat.Cholesky
	if !chol.Factorize(gram) {
		return nil, 0, fmt.Errorf("ridge: gram matrix not positive definite (alpha=%g)", alpha)
	}
	var w mat.VecDense
	if err := chol.SolveVecTo(&w, &xty); err != nil {
		return nil, 0, fmt.Errorf("ridge: solve: %w", err)
	}

	coefs = make([]float64, d)
	intercept = yMean
	for j := 0; j < d; j++ {
		coefs[j] = w.AtVec(j)
		intercept -= colMeans[j] * coefs[j]
	}
	return coefs, intercept, nil
}

// predict applies a fitted linear model to one feature row.
func predict(coefs []float64, intercept float64, row []float64) float64 {
	out := intercept
	for j, c := range coefs {
		out += c * row[j]
	}
	return out
}
