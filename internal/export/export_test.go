package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pable/go-cricket-metrics/internal/model"
	"github.com/pable/go-cricket-metrics/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	var in []model.Delivery
	for i, r := range []int{0, 4, 1, 6, 0, 2} {
		in = append(in, model.Delivery{
			MatchID: 1, Innings: 1, BallNo: i + 1, Year: 2024,
			ValidBall: 1, RunsBatter: r, RunsTotal: r,
		})
	}
	res := pipeline.Run(in)
	res.Hash = "feedface"
	return res
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	doc := Build(sampleResult(), Options{})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, FormatJSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "feedface", got["dataset_hash"])
	assert.EqualValues(t, 2, got["boundary_set"])
	assert.NotContains(t, got, "rolling")
	assert.NotContains(t, got, "generated_at")

	outcomes := got["outcomes"].([]any)
	require.Len(t, outcomes, 2)
	first := outcomes[0].(map[string]any)
	assert.Equal(t, "1", first["next_ball_outcome"])
	assert.EqualValues(t, 100, first["percentage"])
}

func TestWriteYAML_WithRolling(t *testing.T) {
	doc := Build(sampleResult(), Options{IncludeRolling: true})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, FormatYAML))

	var got Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []int{2024}, got.Years)
	require.Len(t, got.Rolling, 6)
	require.NotNil(t, got.Rolling[0].Next3Sum)
	assert.Equal(t, 11, *got.Rolling[0].Next3Sum)
	assert.Nil(t, got.Rolling[5].Next3Sum)
}

func TestWrite_StableWithoutTimestamp(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, Build(sampleResult(), Options{}), FormatJSON))
	require.NoError(t, Write(&b, Build(sampleResult(), Options{}), FormatJSON))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestBuild_Timestamp(t *testing.T) {
	doc := Build(sampleResult(), Options{Timestamp: true})
	assert.NotEmpty(t, doc.GeneratedAt)
}

func TestBuild_Deliveries(t *testing.T) {
	doc := Build(sampleResult(), Options{})
	assert.Empty(t, doc.DeliveryRows)

	doc = Build(sampleResult(), Options{IncludeDeliveries: true})
	require.Len(t, doc.DeliveryRows, 6)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, FormatJSON))

	var got struct {
		Rows []map[string]any `json:"delivery_rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Rows, 6)

	four := got.Rows[1]
	assert.Equal(t, true, four["is_boundary"])
	assert.EqualValues(t, 6, four["last_ball_no"])
	assert.EqualValues(t, 1, four["next_runs_total"])
	assert.Equal(t, "", four["next_extra_type"])
	assert.Equal(t, "1", four["next_ball_outcome"])
	assert.EqualValues(t, 2024, four["year"])

	last := got.Rows[5]
	assert.Nil(t, last["next_runs_total"])
	assert.Nil(t, last["next_ball_outcome"])
}
