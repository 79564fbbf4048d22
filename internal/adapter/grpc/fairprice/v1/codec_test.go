package fairpricev1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())
}

func TestCodecWireNames(t *testing.T) {
	b, err := Codec{}.Marshal(&ListAnalysesRequest{FolderId: "f", SortBy: "ticker", Limit: 10})
	require.NoError(t, err)
	assert.JSONEq(t, `{"folder_id":"f","sort_by":"ticker","limit":10}`, string(b))

	var req ListAnalysesRequest
	require.NoError(t, Codec{}.Unmarshal([]byte(`{"unfiled":true,"offset":20}`), &req))
	assert.True(t, req.Unfiled)
	assert.Equal(t, int32(20), req.Offset)
}

func TestCodecEmptyMessage(t *testing.T) {
	var resp DeleteFolderResponse
	assert.NoError(t, Codec{}.Unmarshal(nil, &resp))

	var req ComputeValuationRequest
	err := Codec{}.Unmarshal([]byte(`{"input":`), &req)
	assert.ErrorContains(t, err, "failed to unmarshal")
}
