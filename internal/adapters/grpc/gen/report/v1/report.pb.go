// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: report/v1/report.proto

package reportv1

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

type GetStatusCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatusCountsRequest) Reset() {
	*x = GetStatusCountsRequest{}
	mi := &file_report_v1_report_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusCountsRequest) ProtoMessage() {}

func (x *GetStatusCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_report_v1_report_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusCountsRequest.ProtoReflect.Descriptor instead.
func (*GetStatusCountsRequest) Descriptor() ([]byte, []int) {
	return file_report_v1_report_proto_rawDescGZIP(), []int{0}
}

func (x *GetStatusCountsRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

type GetStatusCountsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Draft/Submitted/Approved/Rejected ごとの件数。
	Counts        map[string]int32 `protobuf:"bytes,1,rep,name=counts,proto3" json:"counts,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatusCountsResponse) Reset() {
	*x = GetStatusCountsResponse{}
	mi := &file_report_v1_report_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusCountsResponse) ProtoMessage() {}

func (x *GetStatusCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_report_v1_report_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusCountsResponse.ProtoReflect.Descriptor instead.
func (*GetStatusCountsResponse) Descriptor() ([]byte, []int) {
	return file_report_v1_report_proto_rawDescGZIP(), []int{1}
}

func (x *GetStatusCountsResponse) GetCounts() map[string]int32 {
	if x != nil {
		return x.Counts
	}
	return nil
}

type GetEmployeeHoursRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeHoursRequest) Reset() {
	*x = GetEmployeeHoursRequest{}
	mi := &file_report_v1_report_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeHoursRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeHoursRequest) ProtoMessage() {}

func (x *GetEmployeeHoursRequest) ProtoReflect() protoreflect.Message {
	mi := &file_report_v1_report_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeHoursRequest.ProtoReflect.Descriptor instead.
func (*GetEmployeeHoursRequest) Descriptor() ([]byte, []int) {
	return file_report_v1_report_proto_rawDescGZIP(), []int{2}
}

type EmployeeHours struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	EmployeeName  string                 `protobuf:"bytes,2,opt,name=employee_name,json=employeeName,proto3" json:"employee_name,omitempty"`
	TotalHours    float64                `protobuf:"fixed64,3,opt,name=total_hours,json=totalHours,proto3" json:"total_hours,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmployeeHours) Reset() {
	*x = EmployeeHours{}
	mi := &file_report_v1_report_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmployeeHours) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmployeeHours) ProtoMessage() {}

func (x *EmployeeHours) ProtoReflect() protoreflect.Message {
	mi := &file_report_v1_report_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmployeeHours.ProtoReflect.Descriptor instead.
func (*EmployeeHours) Descriptor() ([]byte, []int) {
	return file_report_v1_report_proto_rawDescGZIP(), []int{3}
}

func (x *EmployeeHours) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *EmployeeHours) GetEmployeeName() string {
	if x != nil {
		return x.EmployeeName
	}
	return ""
}

func (x *EmployeeHours) GetTotalHours() float64 {
	if x != nil {
		return x.TotalHours
	}
	return 0
}

type GetEmployeeHoursResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Totals        []*EmployeeHours       `protobuf:"bytes,1,rep,name=totals,proto3" json:"totals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeHoursResponse) Reset() {
	*x = GetEmployeeHoursResponse{}
	mi := &file_report_v1_report_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeHoursResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeHoursResponse) ProtoMessage() {}

func (x *GetEmployeeHoursResponse) ProtoReflect() protoreflect.Message {
	mi := &file_report_v1_report_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeHoursResponse.ProtoReflect.Descriptor instead.
func (*GetEmployeeHoursResponse) Descriptor() ([]byte, []int) {
	return file_report_v1_report_proto_rawDescGZIP(), []int{4}
}

func (x *GetEmployeeHoursResponse) GetTotals() []*EmployeeHours {
	if x != nil {
		return x.Totals
	}
	return nil
}

type ExportCsvRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	// 空の場合は対象従業員の全週をエクスポートします。
	WeekIds       []string `protobuf:"bytes,2,rep,name=week_ids,json=weekIds,proto3" json:"week_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCsvRequest) Reset() {
	*x = ExportCsvRequest{}
	mi := &file_report_v1_report_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCsvRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCsvRequest) ProtoMessage() {}

func (x *ExportCsvRequest) ProtoReflect() protoreflect.Message {
	mi := &file_report_v1_report_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCsvRequest.ProtoReflect.Descriptor instead.
func (*ExportCsvRequest) Descriptor() ([]byte, []int) {
	return file_report_v1_report_proto_rawDescGZIP(), []int{5}
}

func (x *ExportCsvRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *ExportCsvRequest) GetWeekIds() []string {
	if x != nil {
		return x.WeekIds
	}
	return nil
}

type ExportCsvResponse struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Filename string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	// UTF-8 BOM 付き CSV 本文。
	Content       []byte `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCsvResponse) Reset() {
	*x = ExportCsvResponse{}
	mi := &file_report_v1_report_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCsvResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCsvResponse) ProtoMessage() {}

func (x *ExportCsvResponse) ProtoReflect() protoreflect.Message {
	mi := &file_report_v1_report_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCsvResponse.ProtoReflect.Descriptor instead.
func (*ExportCsvResponse) Descriptor() ([]byte, []int) {
	return file_report_v1_report_proto_rawDescGZIP(), []int{6}
}

func (x *ExportCsvResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportCsvResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_report_v1_report_proto protoreflect.FileDescriptor

const file_report_v1_report_proto_rawDesc = "" +
	"\n" +
	"\x16report/v1/report.proto\x12\treport.v1\"9\n" +
	"\x16GetStatusCountsRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\"\x9c\x01\n" +
	"\x17GetStatusCountsResponse\x12F\n" +
	"\x06counts\x18\x01 \x03(\v2..report.v1.GetStatusCountsResponse.CountsEntryR\x06counts\x1a9\n" +
	"\vCountsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\x19\n" +
	"\x17GetEmployeeHoursRequest\"v\n" +
	"\rEmployeeHours\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12#\n" +
	"\remployee_name\x18\x02 \x01(\tR\femployeeName\x12\x1f\n" +
	"\vtotal_hours\x18\x03 \x01(\x01R\n" +
	"totalHours\"L\n" +
	"\x18GetEmployeeHoursResponse\x120\n" +
	"\x06totals\x18\x01 \x03(\v2\x18.report.v1.EmployeeHoursR\x06totals\"N\n" +
	"\x10ExportCsvRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12\x19\n" +
	"\bweek_ids\x18\x02 \x03(\tR\aweekIds\"I\n" +
	"\x11ExportCsvResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\x8e\x02\n" +
	"\rReportService\x12X\n" +
	"\x0fGetStatusCounts\x12!.report.v1.GetStatusCountsRequest\x1a\".report.v1.GetStatusCountsResponse\x12[\n" +
	"\x10GetEmployeeHours\x12\".report.v1.GetEmployeeHoursRequest\x1a#.report.v1.GetEmployeeHoursResponse\x12F\n" +
	"\tExportCsv\x12\x1b.report.v1.ExportCsvRequest\x1a\x1c.report.v1.ExportCsvResponseBTZRgithub.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/report/v1;reportv1b\x06proto3"

var (
	file_report_v1_report_proto_rawDescOnce sync.Once
	file_report_v1_report_proto_rawDescData []byte
)

func file_report_v1_report_proto_rawDescGZIP() []byte {
	file_report_v1_report_proto_rawDescOnce.Do(func() {
		file_report_v1_report_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_report_v1_report_proto_rawDesc), len(file_report_v1_report_proto_rawDesc)))
	})
	return file_report_v1_report_proto_rawDescData
}

var file_report_v1_report_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_report_v1_report_proto_goTypes = []any{
	(*GetStatusCountsRequest)(nil),   // 0: report.v1.GetStatusCountsRequest
	(*GetStatusCountsResponse)(nil),  // 1: report.v1.GetStatusCountsResponse
	(*GetEmployeeHoursRequest)(nil),  // 2: report.v1.GetEmployeeHoursRequest
	(*EmployeeHours)(nil),            // 3: report.v1.EmployeeHours
	(*GetEmployeeHoursResponse)(nil), // 4: report.v1.GetEmployeeHoursResponse
	(*ExportCsvRequest)(nil),         // 5: report.v1.ExportCsvRequest
	(*ExportCsvResponse)(nil),        // 6: report.v1.ExportCsvResponse
	nil,                              // 7: report.v1.GetStatusCountsResponse.CountsEntry
}
var file_report_v1_report_proto_depIdxs = []int32{
	7, // 0: report.v1.GetStatusCountsResponse.counts:type_name -> report.v1.GetStatusCountsResponse.CountsEntry
	3, // 1: report.v1.GetEmployeeHoursResponse.totals:type_name -> report.v1.EmployeeHours
	0, // 2: report.v1.ReportService.GetStatusCounts:input_type -> report.v1.GetStatusCountsRequest
	2, // 3: report.v1.ReportService.GetEmployeeHours:input_type -> report.v1.GetEmployeeHoursRequest
	5, // 4: report.v1.ReportService.ExportCsv:input_type -> report.v1.ExportCsvRequest
	1, // 5: report.v1.ReportService.GetStatusCounts:output_type -> report.v1.GetStatusCountsResponse
	4, // 6: report.v1.ReportService.GetEmployeeHours:output_type -> report.v1.GetEmployeeHoursResponse
	6, // 7: report.v1.ReportService.ExportCsv:output_type -> report.v1.ExportCsvResponse
	5, // [5:8] is the sub-list for method output_type
	2, // [2:5] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_report_v1_report_proto_init() }
func file_report_v1_report_proto_init() {
	if File_report_v1_report_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_report_v1_report_proto_rawDesc), len(file_report_v1_report_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_report_v1_report_proto_goTypes,
		DependencyIndexes: file_report_v1_report_proto_depIdxs,
		MessageInfos:      file_report_v1_report_proto_msgTypes,
	}.Build()
	File_report_v1_report_proto = out.File
	file_report_v1_report_proto_goTypes = nil
	file_report_v1_report_proto_depIdxs = nil
}
