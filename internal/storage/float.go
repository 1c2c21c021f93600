package storage

import (
	"encoding/json"
	"math"
	"strconv"
)

// jsonFloat encodes finite values as JSON numbers and NaN or ±Inf as the
// strings "NaN", "+Inf" and "-Inf", matching trace.csv.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(formatFloat(v))
	}
	return json.Marshal(v)
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = jsonFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}

type plainMetadata RunMetadata

type metadataJSON struct {
	plainMetadata
	InitialGuess jsonFloat `json:"initial_guess"`
	Tolerance    jsonFloat `json:"tolerance"`
	Step         jsonFloat `json:"step"`
	X            jsonFloat `json:"x"`
}

func (m RunMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(metadataJSON{
		plainMetadata: plainMetadata(m),
		InitialGuess:  jsonFloat(m.InitialGuess),
		Tolerance:     jsonFloat(m.Tolerance),
		Step:          jsonFloat(m.Step),
		X:             jsonFloat(m.X),
	})
}

func (m *RunMetadata) UnmarshalJSON(data []byte) error {
	var aux metadataJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = RunMetadata(aux.plainMetadata)
	m.InitialGuess = float64(aux.InitialGuess)
	m.Tolerance = float64(aux.Tolerance)
	m.Step = float64(aux.Step)
	m.X = float64(aux.X)
	return nil
}

type plainIteration ExportIteration

type iterationJSON struct {
	plainIteration
	X0 jsonFloat `json:"x0"`
	Y0 jsonFloat `json:"y0"`
	X1 jsonFloat `json:"x1"`
	Y1 jsonFloat `json:"y1"`
	Dx jsonFloat `json:"dx"`
	X  jsonFloat `json:"x"`
}

func (e ExportIteration) MarshalJSON() ([]byte, error) {
	return json.Marshal(iterationJSON{
		plainIteration: plainIteration(e),
		X0:             jsonFloat(e.X0),
		Y0:             jsonFloat(e.Y0),
		X1:             jsonFloat(e.X1),
		Y1:             jsonFloat(e.Y1),
		Dx:             jsonFloat(e.Dx),
		X:              jsonFloat(e.X),
	})
}

func (e *ExportIteration) UnmarshalJSON(data []byte) error {
	var aux iterationJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = ExportIteration(aux.plainIteration)
	e.X0 = float64(aux.X0)
	e.Y0 = float64(aux.Y0)
	e.X1 = float64(aux.X1)
	e.Y1 = float64(aux.Y1)
	e.Dx = float64(aux.Dx)
	e.X = float64(aux.X)
	return nil
}
