package fairpricev1

import (
	"context"

	"google.golang.org/grpc"
)

// FairPriceServiceClient is the client API for FairPriceService
type FairPriceServiceClient interface {
	ComputeValuation(ctx context.Context, in *ComputeValuationRequest, opts ...grpc.CallOption) (*ComputeValuationResponse, error)
	SaveAnalysis(ctx context.Context, in *SaveAnalysisRequest, opts ...grpc.CallOption) (*SaveAnalysisResponse, error)
	GetAnalysis(ctx context.Context, in *GetAnalysisRequest, opts ...grpc.CallOption) (*GetAnalysisResponse, error)
	ListAnalyses(ctx context.Context, in *ListAnalysesRequest, opts ...grpc.CallOption) (*ListAnalysesResponse, error)
	UpdateAnalysisNotes(ctx context.Context, in *UpdateAnalysisNotesRequest, opts ...grpc.CallOption) (*UpdateAnalysisNotesResponse, error)
	MoveAnalysis(ctx context.Context, in *MoveAnalysisRequest, opts ...grpc.CallOption) (*MoveAnalysisResponse, error)
	DeleteAnalysis(ctx context.Context, in *DeleteAnalysisRequest, opts ...grpc.CallOption) (*DeleteAnalysisResponse, error)
	CreateFolder(ctx context.Context, in *CreateFolderRequest, opts ...grpc.CallOption) (*CreateFolderResponse, error)
	RenameFolder(ctx context.Context, in *RenameFolderRequest, opts ...grpc.CallOption) (*RenameFolderResponse, error)
	ListFolders(ctx context.Context, in *ListFoldersRequest, opts ...grpc.CallOption) (*ListFoldersResponse, error)
	DeleteFolder(ctx context.Context, in *DeleteFolderRequest, opts ...grpc.CallOption) (*DeleteFolderResponse, error)
	ExportFolder(ctx context.Context, in *ExportFolderRequest, opts ...grpc.CallOption) (*ExportFolderResponse, error)
}

type fairPriceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFairPriceServiceClient creates a client over cc. Every call uses the JSON codec.
func NewFairPriceServiceClient(cc grpc.ClientConnInterface) FairPriceServiceClient {
	return &fairPriceServiceClient{cc: cc}
}

func (c *fairPriceServiceClient) ComputeValuation(ctx context.Context, in *ComputeValuationRequest, opts ...grpc.CallOption) (*ComputeValuationResponse, error) {
	out := new(ComputeValuationResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_ComputeValuation_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) SaveAnalysis(ctx context.Context, in *SaveAnalysisRequest, opts ...grpc.CallOption) (*SaveAnalysisResponse, error) {
	out := new(SaveAnalysisResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_SaveAnalysis_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) GetAnalysis(ctx context.Context, in *GetAnalysisRequest, opts ...grpc.CallOption) (*GetAnalysisResponse, error) {
	out := new(GetAnalysisResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_GetAnalysis_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) ListAnalyses(ctx context.Context, in *ListAnalysesRequest, opts ...grpc.CallOption) (*ListAnalysesResponse, error) {
	out := new(ListAnalysesResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_ListAnalyses_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) UpdateAnalysisNotes(ctx context.Context, in *UpdateAnalysisNotesRequest, opts ...grpc.CallOption) (*UpdateAnalysisNotesResponse, error) {
	out := new(UpdateAnalysisNotesResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_UpdateAnalysisNotes_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) MoveAnalysis(ctx context.Context, in *MoveAnalysisRequest, opts ...grpc.CallOption) (*MoveAnalysisResponse, error) {
	out := new(MoveAnalysisResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_MoveAnalysis_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) DeleteAnalysis(ctx context.Context, in *DeleteAnalysisRequest, opts ...grpc.CallOption) (*DeleteAnalysisResponse, error) {
	out := new(DeleteAnalysisResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_DeleteAnalysis_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) CreateFolder(ctx context.Context, in *CreateFolderRequest, opts ...grpc.CallOption) (*CreateFolderResponse, error) {
	out := new(CreateFolderResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_CreateFolder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) RenameFolder(ctx context.Context, in *RenameFolderRequest, opts ...grpc.CallOption) (*RenameFolderResponse, error) {
	out := new(RenameFolderResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_RenameFolder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) ListFolders(ctx context.Context, in *ListFoldersRequest, opts ...grpc.CallOption) (*ListFoldersResponse, error) {
	out := new(ListFoldersResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_ListFolders_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) DeleteFolder(ctx context.Context, in *DeleteFolderRequest, opts ...grpc.CallOption) (*DeleteFolderResponse, error) {
	out := new(DeleteFolderResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_DeleteFolder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fairPriceServiceClient) ExportFolder(ctx context.Context, in *ExportFolderRequest, opts ...grpc.CallOption) (*ExportFolderResponse, error) {
	out := new(ExportFolderResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FairPriceService_ExportFolder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
