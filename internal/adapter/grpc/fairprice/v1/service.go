package fairpricev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "fairprice.v1.FairPriceService"

// Full method names
const (
	FairPriceService_ComputeValuation_FullMethodName    = "/" + ServiceName + "/ComputeValuation"
	FairPriceService_SaveAnalysis_FullMethodName        = "/" + ServiceName + "/SaveAnalysis"
	FairPriceService_GetAnalysis_FullMethodName         = "/" + ServiceName + "/GetAnalysis"
	FairPriceService_ListAnalyses_FullMethodName        = "/" + ServiceName + "/ListAnalyses"
	FairPriceService_UpdateAnalysisNotes_FullMethodName = "/" + ServiceName + "/UpdateAnalysisNotes"
	FairPriceService_MoveAnalysis_FullMethodName        = "/" + ServiceName + "/MoveAnalysis"
	FairPriceService_DeleteAnalysis_FullMethodName      = "/" + ServiceName + "/DeleteAnalysis"
	FairPriceService_CreateFolder_FullMethodName        = "/" + ServiceName + "/CreateFolder"
	FairPriceService_RenameFolder_FullMethodName        = "/" + ServiceName + "/RenameFolder"
	FairPriceService_ListFolders_FullMethodName         = "/" + ServiceName + "/ListFolders"
	FairPriceService_DeleteFolder_FullMethodName        = "/" + ServiceName + "/DeleteFolder"
	FairPriceService_ExportFolder_FullMethodName        = "/" + ServiceName + "/ExportFolder"
)

// FairPriceServiceServer is the server API for FairPriceService
type FairPriceServiceServer interface {
	ComputeValuation(context.Context, *ComputeValuationRequest) (*ComputeValuationResponse, error)
	SaveAnalysis(context.Context, *SaveAnalysisRequest) (*SaveAnalysisResponse, error)
	GetAnalysis(context.Context, *GetAnalysisRequest) (*GetAnalysisResponse, error)
	ListAnalyses(context.Context, *ListAnalysesRequest) (*ListAnalysesResponse, error)
	UpdateAnalysisNotes(context.Context, *UpdateAnalysisNotesRequest) (*UpdateAnalysisNotesResponse, error)
	MoveAnalysis(context.Context, *MoveAnalysisRequest) (*MoveAnalysisResponse, error)
	DeleteAnalysis(context.Context, *DeleteAnalysisRequest) (*DeleteAnalysisResponse, error)
	CreateFolder(context.Context, *CreateFolderRequest) (*CreateFolderResponse, error)
	RenameFolder(context.Context, *RenameFolderRequest) (*RenameFolderResponse, error)
	ListFolders(context.Context, *ListFoldersRequest) (*ListFoldersResponse, error)
	DeleteFolder(context.Context, *DeleteFolderRequest) (*DeleteFolderResponse, error)
	ExportFolder(context.Context, *ExportFolderRequest) (*ExportFolderResponse, error)
}

// UnimplementedFairPriceServiceServer can be embedded to have forward compatible implementations
type UnimplementedFairPriceServiceServer struct{}

func (UnimplementedFairPriceServiceServer) ComputeValuation(context.Context, *ComputeValuationRequest) (*ComputeValuationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ComputeValuation not implemented")
}

func (UnimplementedFairPriceServiceServer) SaveAnalysis(context.Context, *SaveAnalysisRequest) (*SaveAnalysisResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveAnalysis not implemented")
}

func (UnimplementedFairPriceServiceServer) GetAnalysis(context.Context, *GetAnalysisRequest) (*GetAnalysisResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAnalysis not implemented")
}

func (UnimplementedFairPriceServiceServer) ListAnalyses(context.Context, *ListAnalysesRequest) (*ListAnalysesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAnalyses not implemented")
}

func (UnimplementedFairPriceServiceServer) UpdateAnalysisNotes(context.Context, *UpdateAnalysisNotesRequest) (*UpdateAnalysisNotesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateAnalysisNotes not implemented")
}

func (UnimplementedFairPriceServiceServer) MoveAnalysis(context.Context, *MoveAnalysisRequest) (*MoveAnalysisResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MoveAnalysis not implemented")
}

func (UnimplementedFairPriceServiceServer) DeleteAnalysis(context.Context, *DeleteAnalysisRequest) (*DeleteAnalysisResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAnalysis not implemented")
}

func (UnimplementedFairPriceServiceServer) CreateFolder(context.Context, *CreateFolderRequest) (*CreateFolderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateFolder not implemented")
}

func (UnimplementedFairPriceServiceServer) RenameFolder(context.Context, *RenameFolderRequest) (*RenameFolderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RenameFolder not implemented")
}

func (UnimplementedFairPriceServiceServer) ListFolders(context.Context, *ListFoldersRequest) (*ListFoldersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFolders not implemented")
}

func (UnimplementedFairPriceServiceServer) DeleteFolder(context.Context, *DeleteFolderRequest) (*DeleteFolderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteFolder not implemented")
}

func (UnimplementedFairPriceServiceServer) ExportFolder(context.Context, *ExportFolderRequest) (*ExportFolderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportFolder not implemented")
}

// RegisterFairPriceServiceServer registers srv on s
func RegisterFairPriceServiceServer(s grpc.ServiceRegistrar, srv FairPriceServiceServer) {
	s.RegisterService(&FairPriceService_ServiceDesc, srv)
}

func _FairPriceService_ComputeValuation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeValuationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).ComputeValuation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_ComputeValuation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).ComputeValuation(ctx, req.(*ComputeValuationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_SaveAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).SaveAnalysis(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_SaveAnalysis_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).SaveAnalysis(ctx, req.(*SaveAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_GetAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).GetAnalysis(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_GetAnalysis_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).GetAnalysis(ctx, req.(*GetAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_ListAnalyses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAnalysesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).ListAnalyses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_ListAnalyses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).ListAnalyses(ctx, req.(*ListAnalysesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_UpdateAnalysisNotes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateAnalysisNotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).UpdateAnalysisNotes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_UpdateAnalysisNotes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).UpdateAnalysisNotes(ctx, req.(*UpdateAnalysisNotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_MoveAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MoveAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).MoveAnalysis(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_MoveAnalysis_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).MoveAnalysis(ctx, req.(*MoveAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_DeleteAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).DeleteAnalysis(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_DeleteAnalysis_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).DeleteAnalysis(ctx, req.(*DeleteAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_CreateFolder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFolderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).CreateFolder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_CreateFolder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).CreateFolder(ctx, req.(*CreateFolderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_RenameFolder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenameFolderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).RenameFolder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_RenameFolder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).RenameFolder(ctx, req.(*RenameFolderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_ListFolders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFoldersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).ListFolders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_ListFolders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).ListFolders(ctx, req.(*ListFoldersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_DeleteFolder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFolderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).DeleteFolder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_DeleteFolder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).DeleteFolder(ctx, req.(*DeleteFolderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FairPriceService_ExportFolder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportFolderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FairPriceServiceServer).ExportFolder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FairPriceService_ExportFolder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FairPriceServiceServer).ExportFolder(ctx, req.(*ExportFolderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FairPriceService_ServiceDesc is the grpc.ServiceDesc for FairPriceService
var FairPriceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FairPriceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ComputeValuation",
			Handler:    _FairPriceService_ComputeValuation_Handler,
		},
		{
			MethodName: "SaveAnalysis",
			Handler:    _FairPriceService_SaveAnalysis_Handler,
		},
		{
			MethodName: "GetAnalysis",
			Handler:    _FairPriceService_GetAnalysis_Handler,
		},
		{
			MethodName: "ListAnalyses",
			Handler:    _FairPriceService_ListAnalyses_Handler,
		},
		{
			MethodName: "UpdateAnalysisNotes",
			Handler:    _FairPriceService_UpdateAnalysisNotes_Handler,
		},
		{
			MethodName: "MoveAnalysis",
			Handler:    _FairPriceService_MoveAnalysis_Handler,
		},
		{
			MethodName: "DeleteAnalysis",
			Handler:    _FairPriceService_DeleteAnalysis_Handler,
		},
		{
			MethodName: "CreateFolder",
			Handler:    _FairPriceService_CreateFolder_Handler,
		},
		{
			MethodName: "RenameFolder",
			Handler:    _FairPriceService_RenameFolder_Handler,
		},
		{
			MethodName: "ListFolders",
			Handler:    _FairPriceService_ListFolders_Handler,
		},
		{
			MethodName: "DeleteFolder",
			Handler:    _FairPriceService_DeleteFolder_Handler,
		},
		{
			MethodName: "ExportFolder",
			Handler:    _FairPriceService_ExportFolder_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fairprice/v1",
}
