// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: modelcall.proto

package modelv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GenerateRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ExecutionId     string                 `protobuf:"bytes,1,opt,name=execution_id,json=executionId,proto3" json:"execution_id,omitempty"`
	Provider        string                 `protobuf:"bytes,2,opt,name=provider,proto3" json:"provider,omitempty"`
	Model           string                 `protobuf:"bytes,3,opt,name=model,proto3" json:"model,omitempty"`
	ApiKey          string                 `protobuf:"bytes,4,opt,name=api_key,json=apiKey,proto3" json:"api_key,omitempty"`
	SystemPrompt    string                 `protobuf:"bytes,5,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	UserPrompt      string                 `protobuf:"bytes,6,opt,name=user_prompt,json=userPrompt,proto3" json:"user_prompt,omitempty"`
	Tools           []*ToolDefinition      `protobuf:"bytes,7,rep,name=tools,proto3" json:"tools,omitempty"`
	MaxOutputTokens int32                  `protobuf:"varint,8,opt,name=max_output_tokens,json=maxOutputTokens,proto3" json:"max_output_tokens,omitempty"`
	MaxToolSteps    int32                  `protobuf:"varint,9,opt,name=max_tool_steps,json=maxToolSteps,proto3" json:"max_tool_steps,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GenerateRequest) Reset() {
	*x = GenerateRequest{}
	mi := &file_modelcall_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateRequest) ProtoMessage() {}

func (x *GenerateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_modelcall_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateRequest.ProtoReflect.Descriptor instead.
func (*GenerateRequest) Descriptor() ([]byte, []int) {
	return file_modelcall_proto_rawDescGZIP(), []int{0}
}

func (x *GenerateRequest) GetExecutionId() string {
	if x != nil {
		return x.ExecutionId
	}
	return ""
}

func (x *GenerateRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *GenerateRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *GenerateRequest) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}
	return ""
}

func (x *GenerateRequest) GetSystemPrompt() string {
	if x != nil {
		return x.SystemPrompt
	}
	return ""
}

func (x *GenerateRequest) GetUserPrompt() string {
	if x != nil {
		return x.UserPrompt
	}
	return ""
}

func (x *GenerateRequest) GetTools() []*ToolDefinition {
	if x != nil {
		return x.Tools
	}
	return nil
}

func (x *GenerateRequest) GetMaxOutputTokens() int32 {
	if x != nil {
		return x.MaxOutputTokens
	}
	return 0
}

func (x *GenerateRequest) GetMaxToolSteps() int32 {
	if x != nil {
		return x.MaxToolSteps
	}
	return 0
}

type ToolDefinition struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Name             string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description      string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	ParametersSchema string                 `protobuf:"bytes,3,opt,name=parameters_schema,json=parametersSchema,proto3" json:"parameters_schema,omitempty"` // JSON schema
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ToolDefinition) Reset() {
	*x = ToolDefinition{}
	mi := &file_modelcall_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolDefinition) ProtoMessage() {}

func (x *ToolDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_modelcall_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolDefinition.ProtoReflect.Descriptor instead.
func (*ToolDefinition) Descriptor() ([]byte, []int) {
	return file_modelcall_proto_rawDescGZIP(), []int{1}
}

func (x *ToolDefinition) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ToolDefinition) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ToolDefinition) GetParametersSchema() string {
	if x != nil {
		return x.ParametersSchema
	}
	return ""
}

type GenerateResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Content:
	//
	//	*GenerateResponse_Text
	//	*GenerateResponse_ToolCall
	//	*GenerateResponse_Usage
	//	*GenerateResponse_Error
	Content       isGenerateResponse_Content `protobuf_oneof:"content"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateResponse) Reset() {
	*x = GenerateResponse{}
	mi := &file_modelcall_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateResponse) ProtoMessage() {}

func (x *GenerateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_modelcall_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateResponse.ProtoReflect.Descriptor instead.
func (*GenerateResponse) Descriptor() ([]byte, []int) {
	return file_modelcall_proto_rawDescGZIP(), []int{2}
}

func (x *GenerateResponse) GetContent() isGenerateResponse_Content {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *GenerateResponse) GetText() *TextChunk {
	if x != nil {
		if x, ok := x.Content.(*GenerateResponse_Text); ok {
			return x.Text
		}
	}
	return nil
}

func (x *GenerateResponse) GetToolCall() *ToolCallChunk {
	if x != nil {
		if x, ok := x.Content.(*GenerateResponse_ToolCall); ok {
			return x.ToolCall
		}
	}
	return nil
}

func (x *GenerateResponse) GetUsage() *UsageChunk {
	if x != nil {
		if x, ok := x.Content.(*GenerateResponse_Usage); ok {
			return x.Usage
		}
	}
	return nil
}

func (x *GenerateResponse) GetError() *ErrorChunk {
	if x != nil {
		if x, ok := x.Content.(*GenerateResponse_Error); ok {
			return x.Error
		}
	}
	return nil
}

type isGenerateResponse_Content interface {
	isGenerateResponse_Content()
}

type GenerateResponse_Text struct {
	Text *TextChunk `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type GenerateResponse_ToolCall struct {
	ToolCall *ToolCallChunk `protobuf:"bytes,2,opt,name=tool_call,json=toolCall,proto3,oneof"`
}

type GenerateResponse_Usage struct {
	Usage *UsageChunk `protobuf:"bytes,3,opt,name=usage,proto3,oneof"`
}

type GenerateResponse_Error struct {
	Error *ErrorChunk `protobuf:"bytes,4,opt,name=error,proto3,oneof"`
}

func (*GenerateResponse_Text) isGenerateResponse_Content() {}

func (*GenerateResponse_ToolCall) isGenerateResponse_Content() {}

func (*GenerateResponse_Usage) isGenerateResponse_Content() {}

func (*GenerateResponse_Error) isGenerateResponse_Content() {}

type TextChunk struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TextChunk) Reset() {
	*x = TextChunk{}
	mi := &file_modelcall_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TextChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TextChunk) ProtoMessage() {}

func (x *TextChunk) ProtoReflect() protoreflect.Message {
	mi := &file_modelcall_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TextChunk.ProtoReflect.Descriptor instead.
func (*TextChunk) Descriptor() ([]byte, []int) {
	return file_modelcall_proto_rawDescGZIP(), []int{3}
}

func (x *TextChunk) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type ToolCallChunk struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallId        string                 `protobuf:"bytes,1,opt,name=call_id,json=callId,proto3" json:"call_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Arguments     string                 `protobuf:"bytes,3,opt,name=arguments,proto3" json:"arguments,omitempty"` // JSON object
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolCallChunk) Reset() {
	*x = ToolCallChunk{}
	mi := &file_modelcall_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolCallChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolCallChunk) ProtoMessage() {}

func (x *ToolCallChunk) ProtoReflect() protoreflect.Message {
	mi := &file_modelcall_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolCallChunk.ProtoReflect.Descriptor instead.
func (*ToolCallChunk) Descriptor() ([]byte, []int) {
	return file_modelcall_proto_rawDescGZIP(), []int{4}
}

func (x *ToolCallChunk) GetCallId() string {
	if x != nil {
		return x.CallId
	}
	return ""
}

func (x *ToolCallChunk) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ToolCallChunk) GetArguments() string {
	if x != nil {
		return x.Arguments
	}
	return ""
}

type UsageChunk struct {
	state                    protoimpl.MessageState `protogen:"open.v1"`
	InputTokens              int32                  `protobuf:"varint,1,opt,name=input_tokens,json=inputTokens,proto3" json:"input_tokens,omitempty"`
	OutputTokens             int32                  `protobuf:"varint,2,opt,name=output_tokens,json=outputTokens,proto3" json:"output_tokens,omitempty"`
	CacheCreationInputTokens int32                  `protobuf:"varint,3,opt,name=cache_creation_input_tokens,json=cacheCreationInputTokens,proto3" json:"cache_creation_input_tokens,omitempty"`
	CacheReadInputTokens     int32                  `protobuf:"varint,4,opt,name=cache_read_input_tokens,json=cacheReadInputTokens,proto3" json:"cache_read_input_tokens,omitempty"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *UsageChunk) Reset() {
	*x = UsageChunk{}
	mi := &file_modelcall_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UsageChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UsageChunk) ProtoMessage() {}

func (x *UsageChunk) ProtoReflect() protoreflect.Message {
	mi := &file_modelcall_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UsageChunk.ProtoReflect.Descriptor instead.
func (*UsageChunk) Descriptor() ([]byte, []int) {
	return file_modelcall_proto_rawDescGZIP(), []int{5}
}

func (x *UsageChunk) GetInputTokens() int32 {
	if x != nil {
		return x.InputTokens
	}
	return 0
}

func (x *UsageChunk) GetOutputTokens() int32 {
	if x != nil {
		return x.OutputTokens
	}
	return 0
}

func (x *UsageChunk) GetCacheCreationInputTokens() int32 {
	if x != nil {
		return x.CacheCreationInputTokens
	}
	return 0
}

func (x *UsageChunk) GetCacheReadInputTokens() int32 {
	if x != nil {
		return x.CacheReadInputTokens
	}
	return 0
}

type ErrorChunk struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Retryable     bool                   `protobuf:"varint,3,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ErrorChunk) Reset() {
	*x = ErrorChunk{}
	mi := &file_modelcall_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ErrorChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ErrorChunk) ProtoMessage() {}

func (x *ErrorChunk) ProtoReflect() protoreflect.Message {
	mi := &file_modelcall_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ErrorChunk.ProtoReflect.Descriptor instead.
func (*ErrorChunk) Descriptor() ([]byte, []int) {
	return file_modelcall_proto_rawDescGZIP(), []int{6}
}

func (x *ErrorChunk) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ErrorChunk) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *ErrorChunk) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

var File_modelcall_proto protoreflect.FileDescriptor

const file_modelcall_proto_rawDesc = "" +
	"\n" +
	"\x0fmodelcall.proto\x12\fmodelcall.v1\"\xcb\x02\n" +
	"\x0fGenerateRequest\x12!\n" +
	"\fexecution_id\x18\x01 \x01(\tR\vexecutionId\x12\x1a\n" +
	"\bprovider\x18\x02 \x01(\tR\bprovider\x12\x14\n" +
	"\x05model\x18\x03 \x01(\tR\x05model\x12\x17\n" +
	"\aapi_key\x18\x04 \x01(\tR\x06apiKey\x12#\n" +
	"\rsystem_prompt\x18\x05 \x01(\tR\fsystemPrompt\x12\x1f\n" +
	"\vuser_prompt\x18\x06 \x01(\tR\n" +
	"userPrompt\x122\n" +
	"\x05tools\x18\a \x03(\v2\x1c.modelcall.v1.ToolDefinitionR\x05tools\x12*\n" +
	"\x11max_output_tokens\x18\b \x01(\x05R\x0fmaxOutputTokens\x12$\n" +
	"\x0emax_tool_steps\x18\t \x01(\x05R\fmaxToolSteps\"s\n" +
	"\x0eToolDefinition\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12+\n" +
	"\x11parameters_schema\x18\x03 \x01(\tR\x10parametersSchema\"\xec\x01\n" +
	"\x10GenerateResponse\x12-\n" +
	"\x04text\x18\x01 \x01(\v2\x17.modelcall.v1.TextChunkH\x00R\x04text\x12:\n" +
	"\ttool_call\x18\x02 \x01(\v2\x1b.modelcall.v1.ToolCallChunkH\x00R\btoolCall\x120\n" +
	"\x05usage\x18\x03 \x01(\v2\x18.modelcall.v1.UsageChunkH\x00R\x05usage\x120\n" +
	"\x05error\x18\x04 \x01(\v2\x18.modelcall.v1.ErrorChunkH\x00R\x05errorB\t\n" +
	"\acontent\"%\n" +
	"\tTextChunk\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\"Z\n" +
	"\rToolCallChunk\x12\x17\n" +
	"\acall_id\x18\x01 \x01(\tR\x06callId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1c\n" +
	"\targuments\x18\x03 \x01(\tR\targuments\"\xca\x01\n" +
	"\n" +
	"UsageChunk\x12!\n" +
	"\finput_tokens\x18\x01 \x01(\x05R\vinputTokens\x12#\n" +
	"\routput_tokens\x18\x02 \x01(\x05R\foutputTokens\x12=\n" +
	"\x1bcache_creation_input_tokens\x18\x03 \x01(\x05R\x18cacheCreationInputTokens\x125\n" +
	"\x17cache_read_input_tokens\x18\x04 \x01(\x05R\x14cacheReadInputTokens\"X\n" +
	"\n" +
	"ErrorChunk\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x1c\n" +
	"\tretryable\x18\x03 \x01(\bR\tretryable2[\n" +
	"\fModelService\x12K\n" +
	"\bGenerate\x12\x1d.modelcall.v1.GenerateRequest\x1a\x1e.modelcall.v1.GenerateResponse0\x01B*Z(github.com/skein-dev/skein/proto;modelv1b\x06proto3"

var (
	file_modelcall_proto_rawDescOnce sync.Once
	file_modelcall_proto_rawDescData []byte
)

func file_modelcall_proto_rawDescGZIP() []byte {
	file_modelcall_proto_rawDescOnce.Do(func() {
		file_modelcall_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_modelcall_proto_rawDesc), len(file_modelcall_proto_rawDesc)))
	})
	return file_modelcall_proto_rawDescData
}

var file_modelcall_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_modelcall_proto_goTypes = []any{
	(*GenerateRequest)(nil),  // 0: modelcall.v1.GenerateRequest
	(*ToolDefinition)(nil),   // 1: modelcall.v1.ToolDefinition
	(*GenerateResponse)(nil), // 2: modelcall.v1.GenerateResponse
	(*TextChunk)(nil),        // 3: modelcall.v1.TextChunk
	(*ToolCallChunk)(nil),    // 4: modelcall.v1.ToolCallChunk
	(*UsageChunk)(nil),       // 5: modelcall.v1.UsageChunk
	(*ErrorChunk)(nil),       // 6: modelcall.v1.ErrorChunk
}
var file_modelcall_proto_depIdxs = []int32{
	1, // 0: modelcall.v1.GenerateRequest.tools:type_name -> modelcall.v1.ToolDefinition
	3, // 1: modelcall.v1.GenerateResponse.text:type_name -> modelcall.v1.TextChunk
	4, // 2: modelcall.v1.GenerateResponse.tool_call:type_name -> modelcall.v1.ToolCallChunk
	5, // 3: modelcall.v1.GenerateResponse.usage:type_name -> modelcall.v1.UsageChunk
	6, // 4: modelcall.v1.GenerateResponse.error:type_name -> modelcall.v1.ErrorChunk
	0, // 5: modelcall.v1.ModelService.Generate:input_type -> modelcall.v1.GenerateRequest
	2, // 6: modelcall.v1.ModelService.Generate:output_type -> modelcall.v1.GenerateResponse
	6, // [6:7] is the sub-list for method output_type
	5, // [5:6] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_modelcall_proto_init() }
func file_modelcall_proto_init() {
	if File_modelcall_proto != nil {
		return
	}
	file_modelcall_proto_msgTypes[2].OneofWrappers = []any{
		(*GenerateResponse_Text)(nil),
		(*GenerateResponse_ToolCall)(nil),
		(*GenerateResponse_Usage)(nil),
		(*GenerateResponse_Error)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_modelcall_proto_rawDesc), len(file_modelcall_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_modelcall_proto_goTypes,
		DependencyIndexes: file_modelcall_proto_depIdxs,
		MessageInfos:      file_modelcall_proto_msgTypes,
	}.Build()
	File_modelcall_proto = out.File
	file_modelcall_proto_goTypes = nil
	file_modelcall_proto_depIdxs = nil
}
