package model

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/internal/activation"
	"github.com/shallow-ml/shallow/internal/loss"
	"github.com/shallow-ml/shallow/internal/matutil"
)

// Network is a feed-forward network with one hidden layer, trained by
// mini-batch gradient descent on a squared-error objective.
//
// Weight shapes follow the bias-augmented inputs: the hidden weights are
// (features+1)×hidden and the output weights (hidden+1)×outputs. Both are
// drawn fresh from a He-scaled Gaussian on every Fit call and updated in
// place each mini-batch.
type Network struct {
	hiddenUnits int
	batchSize   int
	epochs      int
	lr          float64
	hiddenAct   activation.Function
	outAct      activation.Function
	logEvery    int
	monitor     Monitor
	seed        uint64

	wHidden *mat.Dense // (features+1) × hiddenUnits; nil until Fit
	wOut    *mat.Dense // (hiddenUnits+1) × outputs; nil until Fit
}

// NetworkConfig holds the hyperparameters for Network.
type NetworkConfig struct {
	HiddenUnits      int                 // Neurons in the hidden layer (required, > 0)
	BatchSize        int                 // Mini-batch size (default: 20)
	HiddenActivation activation.Function // Hidden nonlinearity (default: ReLU)
	OutActivation    activation.Function // Output nonlinearity (default: Sigmoid)
	Epochs           int                 // Full passes over the data (default: 100)
	LearningRate     float64             // Step size α (default: 0.1)
	LogEvery         int                 // Monitor cadence in epochs (default: 100)
	Monitor          Monitor             // Optional loss observer
	Seed             uint64              // Weight-init seed; 0 uses an unseeded source
}

// NewNetwork creates an untrained network, applying defaults for zero-valued
// config fields. Returns an error if HiddenUnits is not positive.
func NewNetwork(cfg NetworkConfig) (*Network, error) {
	if cfg.HiddenUnits <= 0 {
		return nil, fmt.Errorf("model: HiddenUnits must be > 0, got %d", cfg.HiddenUnits)
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.HiddenActivation == 0 {
		cfg.HiddenActivation = activation.ReLU
	}
	if cfg.OutActivation == 0 {
		cfg.OutActivation = activation.Sigmoid
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = 100
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = 0.1
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = defaultLogEvery
	}
	return &Network{
		hiddenUnits: cfg.HiddenUnits,
		batchSize:   cfg.BatchSize,
		epochs:      cfg.Epochs,
		lr:          cfg.LearningRate,
		hiddenAct:   cfg.HiddenActivation,
		outAct:      cfg.OutActivation,
		logEvery:    cfg.LogEvery,
		monitor:     cfg.Monitor,
		seed:        cfg.Seed,
	}, nil
}

// Fit trains the network on x (n×features) and targets y (n×outputs, one
// column per output unit).
//
// The input is bias-augmented once and both weight matrices are He-initialized
// from scratch. Each epoch processes floor(n/BatchSize) fixed-size batches in
// order, plus a final batch of n%BatchSize examples when the division is not
// exact; no shuffling, no convergence check. Every LogEvery-th epoch the
// mean-squared-error over the entire training set is handed to the Monitor,
// if one is installed.
func (n *Network) Fit(x, y mat.Matrix) {
	xb := matutil.AddBias(x)
	rows, cols := xb.Dims()
	_, outUnits := y.Dims()

	var src rand.Source
	if n.seed != 0 {
		src = rand.NewSource(n.seed)
	}
	n.wHidden = heInit(cols, n.hiddenUnits, src)
	n.wOut = heInit(n.hiddenUnits+1, outUnits, src)

	yd := mat.DenseCopyOf(y)
	batches := matutil.Batches(rows, n.batchSize)

	for epoch := 0; epoch < n.epochs; epoch++ {
		for _, b := range batches {
			xBatch := xb.Slice(b.Start, b.End, 0, cols)
			yBatch := yd.Slice(b.Start, b.End, 0, outUnits)
			n.step(xBatch, yBatch)
		}
		if n.monitor != nil && epoch%n.logEvery == 0 {
			n.monitor(epoch, loss.MSE(n.forward(xb), yd))
		}
	}
}

// step runs one forward/backward pass over a bias-augmented batch and updates
// both weight matrices in place.
func (n *Network) step(xb, y mat.Matrix) {
	batchN, _ := xb.Dims()
	_, outUnits := y.Dims()

	// Forward.
	var zH mat.Dense
	zH.Mul(xb, n.wHidden)
	aH := activation.Map(n.hiddenAct, &zH)
	aHB := matutil.AddBias(aH)
	var zO mat.Dense
	zO.Mul(aHB, n.wOut)
	aO := activation.Map(n.outAct, &zO)

	// delta = 2·(a_o - y) ⊙ f_out'(a_o), the squared-error gradient at the
	// output pre-activation (factor-of-2 convention).
	var delta mat.Dense
	delta.Sub(aO, y)
	delta.Scale(2, &delta)
	delta.MulElem(&delta, activation.MapDeriv(n.outAct, aO))

	// dW_out = α/batchN · a_h_bᵀ·delta
	var gradOut mat.Dense
	gradOut.Mul(aHB.T(), &delta)
	gradOut.Scale(n.lr/float64(batchN), &gradOut)

	// Backpropagate through W_out, excluding its bias row: the bias input is
	// a constant with no upstream weight to correct.
	wOutNoBias := n.wOut.Slice(1, n.hiddenUnits+1, 0, outUnits)
	var back mat.Dense
	back.Mul(&delta, wOutNoBias.T())
	back.MulElem(&back, activation.MapDeriv(n.hiddenAct, aH))

	// dW_h = α/batchN · X_bᵀ·back
	var gradHidden mat.Dense
	gradHidden.Mul(xb.T(), &back)
	gradHidden.Scale(n.lr/float64(batchN), &gradHidden)

	n.wOut.Sub(n.wOut, &gradOut)
	n.wHidden.Sub(n.wHidden, &gradHidden)
}

// forward runs the forward pass over a bias-augmented input.
func (n *Network) forward(xb mat.Matrix) *mat.Dense {
	var zH mat.Dense
	zH.Mul(xb, n.wHidden)
	aHB := matutil.AddBias(activation.Map(n.hiddenAct, &zH))
	var zO mat.Dense
	zO.Mul(aHB, n.wOut)
	return activation.Map(n.outAct, &zO)
}

// PredictProb returns the network output for each row of x.
//
// x must already include the bias column (use matutil.AddBias); otherwise the
// first multiply panics with a mat shape error. Weights are read, never
// written.
func (n *Network) PredictProb(x mat.Matrix) *mat.Dense {
	return n.forward(x)
}

// Prediction is the argmax class of one example together with its output
// value.
type Prediction struct {
	Class int
	Prob  float64
}

// Predict returns the argmax class and its probability for each row of x.
// x must already include the bias column.
func (n *Network) Predict(x mat.Matrix) []Prediction {
	aO := n.PredictProb(x)
	rows, _ := aO.Dims()
	out := make([]Prediction, rows)
	for i := 0; i < rows; i++ {
		idx, val := matutil.ArgMax(aO.RawRowView(i))
		out[i] = Prediction{Class: idx, Prob: val}
	}
	return out
}

// HiddenWeights exposes the (features+1)×hidden weight matrix for inspection.
// Returns nil before Fit. The returned matrix is the live weight storage.
func (n *Network) HiddenWeights() *mat.Dense { return n.wHidden }

// OutputWeights exposes the (hidden+1)×outputs weight matrix for inspection.
// Returns nil before Fit. The returned matrix is the live weight storage.
func (n *Network) OutputWeights() *mat.Dense { return n.wOut }
