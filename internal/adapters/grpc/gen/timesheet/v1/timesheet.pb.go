// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: timesheet/v1/timesheet.proto

package timesheetv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type WeekStatus int32

const (
	WeekStatus_WEEK_STATUS_UNSPECIFIED WeekStatus = 0
	WeekStatus_WEEK_STATUS_DRAFT       WeekStatus = 1
	WeekStatus_WEEK_STATUS_SUBMITTED   WeekStatus = 2
	WeekStatus_WEEK_STATUS_APPROVED    WeekStatus = 3
	WeekStatus_WEEK_STATUS_REJECTED    WeekStatus = 4
)

// Enum value maps for WeekStatus.
var (
	WeekStatus_name = map[int32]string{
		0: "WEEK_STATUS_UNSPECIFIED",
		1: "WEEK_STATUS_DRAFT",
		2: "WEEK_STATUS_SUBMITTED",
		3: "WEEK_STATUS_APPROVED",
		4: "WEEK_STATUS_REJECTED",
	}
	WeekStatus_value = map[string]int32{
		"WEEK_STATUS_UNSPECIFIED": 0,
		"WEEK_STATUS_DRAFT":       1,
		"WEEK_STATUS_SUBMITTED":   2,
		"WEEK_STATUS_APPROVED":    3,
		"WEEK_STATUS_REJECTED":    4,
	}
)

func (x WeekStatus) Enum() *WeekStatus {
	p := new(WeekStatus)
	*p = x
	return p
}

func (x WeekStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (WeekStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_timesheet_v1_timesheet_proto_enumTypes[0].Descriptor()
}

func (WeekStatus) Type() protoreflect.EnumType {
	return &file_timesheet_v1_timesheet_proto_enumTypes[0]
}

func (x WeekStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use WeekStatus.Descriptor instead.
func (WeekStatus) EnumDescriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{0}
}

type ReviewDecision int32

const (
	ReviewDecision_REVIEW_DECISION_UNSPECIFIED ReviewDecision = 0
	ReviewDecision_REVIEW_DECISION_APPROVED    ReviewDecision = 1
	ReviewDecision_REVIEW_DECISION_REJECTED    ReviewDecision = 2
)

// Enum value maps for ReviewDecision.
var (
	ReviewDecision_name = map[int32]string{
		0: "REVIEW_DECISION_UNSPECIFIED",
		1: "REVIEW_DECISION_APPROVED",
		2: "REVIEW_DECISION_REJECTED",
	}
	ReviewDecision_value = map[string]int32{
		"REVIEW_DECISION_UNSPECIFIED": 0,
		"REVIEW_DECISION_APPROVED":    1,
		"REVIEW_DECISION_REJECTED":    2,
	}
)

func (x ReviewDecision) Enum() *ReviewDecision {
	p := new(ReviewDecision)
	*p = x
	return p
}

func (x ReviewDecision) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ReviewDecision) Descriptor() protoreflect.EnumDescriptor {
	return file_timesheet_v1_timesheet_proto_enumTypes[1].Descriptor()
}

func (ReviewDecision) Type() protoreflect.EnumType {
	return &file_timesheet_v1_timesheet_proto_enumTypes[1]
}

func (x ReviewDecision) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ReviewDecision.Descriptor instead.
func (ReviewDecision) EnumDescriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{1}
}

type DayEntry struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// mon..sun の固定スロット識別子。
	Id            string  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Label         string  `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	Hours         float64 `protobuf:"fixed64,3,opt,name=hours,proto3" json:"hours,omitempty"`
	JobNo         string  `protobuf:"bytes,4,opt,name=job_no,json=jobNo,proto3" json:"job_no,omitempty"`
	Location      string  `protobuf:"bytes,5,opt,name=location,proto3" json:"location,omitempty"`
	ShiftType     string  `protobuf:"bytes,6,opt,name=shift_type,json=shiftType,proto3" json:"shift_type,omitempty"`
	LunchTaken    string  `protobuf:"bytes,7,opt,name=lunch_taken,json=lunchTaken,proto3" json:"lunch_taken,omitempty"`
	LivingAway    string  `protobuf:"bytes,8,opt,name=living_away,json=livingAway,proto3" json:"living_away,omitempty"`
	StartTime     string  `protobuf:"bytes,9,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	FinishTime    string  `protobuf:"bytes,10,opt,name=finish_time,json=finishTime,proto3" json:"finish_time,omitempty"`
	Description   string  `protobuf:"bytes,11,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DayEntry) Reset() {
	*x = DayEntry{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DayEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DayEntry) ProtoMessage() {}

func (x *DayEntry) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DayEntry.ProtoReflect.Descriptor instead.
func (*DayEntry) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{0}
}

func (x *DayEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DayEntry) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *DayEntry) GetHours() float64 {
	if x != nil {
		return x.Hours
	}
	return 0
}

func (x *DayEntry) GetJobNo() string {
	if x != nil {
		return x.JobNo
	}
	return ""
}

func (x *DayEntry) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *DayEntry) GetShiftType() string {
	if x != nil {
		return x.ShiftType
	}
	return ""
}

func (x *DayEntry) GetLunchTaken() string {
	if x != nil {
		return x.LunchTaken
	}
	return ""
}

func (x *DayEntry) GetLivingAway() string {
	if x != nil {
		return x.LivingAway
	}
	return ""
}

func (x *DayEntry) GetStartTime() string {
	if x != nil {
		return x.StartTime
	}
	return ""
}

func (x *DayEntry) GetFinishTime() string {
	if x != nil {
		return x.FinishTime
	}
	return ""
}

func (x *DayEntry) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type Week struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Label            string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	WeekStart        string                 `protobuf:"bytes,3,opt,name=week_start,json=weekStart,proto3" json:"week_start,omitempty"`
	Status           WeekStatus             `protobuf:"varint,4,opt,name=status,proto3,enum=timesheet.v1.WeekStatus" json:"status,omitempty"`
	EmployeeId       string                 `protobuf:"bytes,5,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	EmployeeName     string                 `protobuf:"bytes,6,opt,name=employee_name,json=employeeName,proto3" json:"employee_name,omitempty"`
	Days             []*DayEntry            `protobuf:"bytes,7,rep,name=days,proto3" json:"days,omitempty"`
	RejectionComment string                 `protobuf:"bytes,8,opt,name=rejection_comment,json=rejectionComment,proto3" json:"rejection_comment,omitempty"`
	CreatedAt        *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	SubmittedAt      *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=submitted_at,json=submittedAt,proto3" json:"submitted_at,omitempty"`
	ReviewedAt       *timestamppb.Timestamp `protobuf:"bytes,12,opt,name=reviewed_at,json=reviewedAt,proto3" json:"reviewed_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Week) Reset() {
	*x = Week{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Week) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Week) ProtoMessage() {}

func (x *Week) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Week.ProtoReflect.Descriptor instead.
func (*Week) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{1}
}

func (x *Week) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Week) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *Week) GetWeekStart() string {
	if x != nil {
		return x.WeekStart
	}
	return ""
}

func (x *Week) GetStatus() WeekStatus {
	if x != nil {
		return x.Status
	}
	return WeekStatus_WEEK_STATUS_UNSPECIFIED
}

func (x *Week) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *Week) GetEmployeeName() string {
	if x != nil {
		return x.EmployeeName
	}
	return ""
}

func (x *Week) GetDays() []*DayEntry {
	if x != nil {
		return x.Days
	}
	return nil
}

func (x *Week) GetRejectionComment() string {
	if x != nil {
		return x.RejectionComment
	}
	return ""
}

func (x *Week) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Week) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Week) GetSubmittedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.SubmittedAt
	}
	return nil
}

func (x *Week) GetReviewedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ReviewedAt
	}
	return nil
}

type SaveDayDraftRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// 空の場合は呼び出し元自身の週として扱います。
	EmployeeId    string    `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	WeekId        string    `protobuf:"bytes,2,opt,name=week_id,json=weekId,proto3" json:"week_id,omitempty"`
	WeekLabel     string    `protobuf:"bytes,3,opt,name=week_label,json=weekLabel,proto3" json:"week_label,omitempty"`
	WeekStart     string    `protobuf:"bytes,4,opt,name=week_start,json=weekStart,proto3" json:"week_start,omitempty"`
	Day           *DayEntry `protobuf:"bytes,5,opt,name=day,proto3" json:"day,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveDayDraftRequest) Reset() {
	*x = SaveDayDraftRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveDayDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveDayDraftRequest) ProtoMessage() {}

func (x *SaveDayDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveDayDraftRequest.ProtoReflect.Descriptor instead.
func (*SaveDayDraftRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{2}
}

func (x *SaveDayDraftRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *SaveDayDraftRequest) GetWeekId() string {
	if x != nil {
		return x.WeekId
	}
	return ""
}

func (x *SaveDayDraftRequest) GetWeekLabel() string {
	if x != nil {
		return x.WeekLabel
	}
	return ""
}

func (x *SaveDayDraftRequest) GetWeekStart() string {
	if x != nil {
		return x.WeekStart
	}
	return ""
}

func (x *SaveDayDraftRequest) GetDay() *DayEntry {
	if x != nil {
		return x.Day
	}
	return nil
}

type SaveDayDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Week          *Week                  `protobuf:"bytes,1,opt,name=week,proto3" json:"week,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveDayDraftResponse) Reset() {
	*x = SaveDayDraftResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveDayDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveDayDraftResponse) ProtoMessage() {}

func (x *SaveDayDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveDayDraftResponse.ProtoReflect.Descriptor instead.
func (*SaveDayDraftResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{3}
}

func (x *SaveDayDraftResponse) GetWeek() *Week {
	if x != nil {
		return x.Week
	}
	return nil
}

type SubmitWeekRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WeekId        string                 `protobuf:"bytes,1,opt,name=week_id,json=weekId,proto3" json:"week_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitWeekRequest) Reset() {
	*x = SubmitWeekRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitWeekRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitWeekRequest) ProtoMessage() {}

func (x *SubmitWeekRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitWeekRequest.ProtoReflect.Descriptor instead.
func (*SubmitWeekRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitWeekRequest) GetWeekId() string {
	if x != nil {
		return x.WeekId
	}
	return ""
}

type SubmitWeekResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Week          *Week                  `protobuf:"bytes,1,opt,name=week,proto3" json:"week,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitWeekResponse) Reset() {
	*x = SubmitWeekResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitWeekResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitWeekResponse) ProtoMessage() {}

func (x *SubmitWeekResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitWeekResponse.ProtoReflect.Descriptor instead.
func (*SubmitWeekResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{5}
}

func (x *SubmitWeekResponse) GetWeek() *Week {
	if x != nil {
		return x.Week
	}
	return nil
}

type ReviewWeekRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	WeekId           string                 `protobuf:"bytes,1,opt,name=week_id,json=weekId,proto3" json:"week_id,omitempty"`
	Decision         ReviewDecision         `protobuf:"varint,2,opt,name=decision,proto3,enum=timesheet.v1.ReviewDecision" json:"decision,omitempty"`
	RejectionComment string                 `protobuf:"bytes,3,opt,name=rejection_comment,json=rejectionComment,proto3" json:"rejection_comment,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ReviewWeekRequest) Reset() {
	*x = ReviewWeekRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewWeekRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewWeekRequest) ProtoMessage() {}

func (x *ReviewWeekRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewWeekRequest.ProtoReflect.Descriptor instead.
func (*ReviewWeekRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{6}
}

func (x *ReviewWeekRequest) GetWeekId() string {
	if x != nil {
		return x.WeekId
	}
	return ""
}

func (x *ReviewWeekRequest) GetDecision() ReviewDecision {
	if x != nil {
		return x.Decision
	}
	return ReviewDecision_REVIEW_DECISION_UNSPECIFIED
}

func (x *ReviewWeekRequest) GetRejectionComment() string {
	if x != nil {
		return x.RejectionComment
	}
	return ""
}

type ReviewWeekResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Week          *Week                  `protobuf:"bytes,1,opt,name=week,proto3" json:"week,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewWeekResponse) Reset() {
	*x = ReviewWeekResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewWeekResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewWeekResponse) ProtoMessage() {}

func (x *ReviewWeekResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewWeekResponse.ProtoReflect.Descriptor instead.
func (*ReviewWeekResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{7}
}

func (x *ReviewWeekResponse) GetWeek() *Week {
	if x != nil {
		return x.Week
	}
	return nil
}

type ForceApproveWeekRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WeekId        string                 `protobuf:"bytes,1,opt,name=week_id,json=weekId,proto3" json:"week_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ForceApproveWeekRequest) Reset() {
	*x = ForceApproveWeekRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForceApproveWeekRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForceApproveWeekRequest) ProtoMessage() {}

func (x *ForceApproveWeekRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForceApproveWeekRequest.ProtoReflect.Descriptor instead.
func (*ForceApproveWeekRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{8}
}

func (x *ForceApproveWeekRequest) GetWeekId() string {
	if x != nil {
		return x.WeekId
	}
	return ""
}

type ForceApproveWeekResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Week          *Week                  `protobuf:"bytes,1,opt,name=week,proto3" json:"week,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ForceApproveWeekResponse) Reset() {
	*x = ForceApproveWeekResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForceApproveWeekResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForceApproveWeekResponse) ProtoMessage() {}

func (x *ForceApproveWeekResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForceApproveWeekResponse.ProtoReflect.Descriptor instead.
func (*ForceApproveWeekResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{9}
}

func (x *ForceApproveWeekResponse) GetWeek() *Week {
	if x != nil {
		return x.Week
	}
	return nil
}

type GetWeekRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WeekId        string                 `protobuf:"bytes,1,opt,name=week_id,json=weekId,proto3" json:"week_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWeekRequest) Reset() {
	*x = GetWeekRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWeekRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWeekRequest) ProtoMessage() {}

func (x *GetWeekRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWeekRequest.ProtoReflect.Descriptor instead.
func (*GetWeekRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{10}
}

func (x *GetWeekRequest) GetWeekId() string {
	if x != nil {
		return x.WeekId
	}
	return ""
}

type GetWeekResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Week          *Week                  `protobuf:"bytes,1,opt,name=week,proto3" json:"week,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWeekResponse) Reset() {
	*x = GetWeekResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWeekResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWeekResponse) ProtoMessage() {}

func (x *GetWeekResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWeekResponse.ProtoReflect.Descriptor instead.
func (*GetWeekResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{11}
}

func (x *GetWeekResponse) GetWeek() *Week {
	if x != nil {
		return x.Week
	}
	return nil
}

type ListWeeksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Status        WeekStatus             `protobuf:"varint,2,opt,name=status,proto3,enum=timesheet.v1.WeekStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWeeksRequest) Reset() {
	*x = ListWeeksRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWeeksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWeeksRequest) ProtoMessage() {}

func (x *ListWeeksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWeeksRequest.ProtoReflect.Descriptor instead.
func (*ListWeeksRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{12}
}

func (x *ListWeeksRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *ListWeeksRequest) GetStatus() WeekStatus {
	if x != nil {
		return x.Status
	}
	return WeekStatus_WEEK_STATUS_UNSPECIFIED
}

type ListWeeksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Weeks         []*Week                `protobuf:"bytes,1,rep,name=weeks,proto3" json:"weeks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWeeksResponse) Reset() {
	*x = ListWeeksResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWeeksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWeeksResponse) ProtoMessage() {}

func (x *ListWeeksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWeeksResponse.ProtoReflect.Descriptor instead.
func (*ListWeeksResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{13}
}

func (x *ListWeeksResponse) GetWeeks() []*Week {
	if x != nil {
		return x.Weeks
	}
	return nil
}

var File_timesheet_v1_timesheet_proto protoreflect.FileDescriptor

const file_timesheet_v1_timesheet_proto_rawDesc = "" +
	"\n" +
	"\x1ctimesheet/v1/timesheet.proto\x12\ftimesheet.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xbc\x02\n" +
	"\bDayEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x14\n" +
	"\x05hours\x18\x03 \x01(\x01R\x05hours\x12\x15\n" +
	"\x06job_no\x18\x04 \x01(\tR\x05jobNo\x12\x1a\n" +
	"\blocation\x18\x05 \x01(\tR\blocation\x12\x1d\n" +
	"\n" +
	"shift_type\x18\x06 \x01(\tR\tshiftType\x12\x1f\n" +
	"\vlunch_taken\x18\a \x01(\tR\n" +
	"lunchTaken\x12\x1f\n" +
	"\vliving_away\x18\b \x01(\tR\n" +
	"livingAway\x12\x1d\n" +
	"\n" +
	"start_time\x18\t \x01(\tR\tstartTime\x12\x1f\n" +
	"\vfinish_time\x18\n" +
	" \x01(\tR\n" +
	"finishTime\x12 \n" +
	"\vdescription\x18\v \x01(\tR\vdescription\"\x8e\x04\n" +
	"\x04Week\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x1d\n" +
	"\n" +
	"week_start\x18\x03 \x01(\tR\tweekStart\x120\n" +
	"\x06status\x18\x04 \x01(\x0e2\x18.timesheet.v1.WeekStatusR\x06status\x12\x1f\n" +
	"\vemployee_id\x18\x05 \x01(\tR\n" +
	"employeeId\x12#\n" +
	"\remployee_name\x18\x06 \x01(\tR\femployeeName\x12*\n" +
	"\x04days\x18\a \x03(\v2\x16.timesheet.v1.DayEntryR\x04days\x12+\n" +
	"\x11rejection_comment\x18\b \x01(\tR\x10rejectionComment\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12=\n" +
	"\fsubmitted_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\vsubmittedAt\x12;\n" +
	"\vreviewed_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"reviewedAt\"\xb7\x01\n" +
	"\x13SaveDayDraftRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12\x17\n" +
	"\aweek_id\x18\x02 \x01(\tR\x06weekId\x12\x1d\n" +
	"\n" +
	"week_label\x18\x03 \x01(\tR\tweekLabel\x12\x1d\n" +
	"\n" +
	"week_start\x18\x04 \x01(\tR\tweekStart\x12(\n" +
	"\x03day\x18\x05 \x01(\v2\x16.timesheet.v1.DayEntryR\x03day\">\n" +
	"\x14SaveDayDraftResponse\x12&\n" +
	"\x04week\x18\x01 \x01(\v2\x12.timesheet.v1.WeekR\x04week\",\n" +
	"\x11SubmitWeekRequest\x12\x17\n" +
	"\aweek_id\x18\x01 \x01(\tR\x06weekId\"<\n" +
	"\x12SubmitWeekResponse\x12&\n" +
	"\x04week\x18\x01 \x01(\v2\x12.timesheet.v1.WeekR\x04week\"\x93\x01\n" +
	"\x11ReviewWeekRequest\x12\x17\n" +
	"\aweek_id\x18\x01 \x01(\tR\x06weekId\x128\n" +
	"\bdecision\x18\x02 \x01(\x0e2\x1c.timesheet.v1.ReviewDecisionR\bdecision\x12+\n" +
	"\x11rejection_comment\x18\x03 \x01(\tR\x10rejectionComment\"<\n" +
	"\x12ReviewWeekResponse\x12&\n" +
	"\x04week\x18\x01 \x01(\v2\x12.timesheet.v1.WeekR\x04week\"2\n" +
	"\x17ForceApproveWeekRequest\x12\x17\n" +
	"\aweek_id\x18\x01 \x01(\tR\x06weekId\"B\n" +
	"\x18ForceApproveWeekResponse\x12&\n" +
	"\x04week\x18\x01 \x01(\v2\x12.timesheet.v1.WeekR\x04week\")\n" +
	"\x0eGetWeekRequest\x12\x17\n" +
	"\aweek_id\x18\x01 \x01(\tR\x06weekId\"9\n" +
	"\x0fGetWeekResponse\x12&\n" +
	"\x04week\x18\x01 \x01(\v2\x12.timesheet.v1.WeekR\x04week\"e\n" +
	"\x10ListWeeksRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x120\n" +
	"\x06status\x18\x02 \x01(\x0e2\x18.timesheet.v1.WeekStatusR\x06status\"=\n" +
	"\x11ListWeeksResponse\x12(\n" +
	"\x05weeks\x18\x01 \x03(\v2\x12.timesheet.v1.WeekR\x05weeks*\x8f\x01\n" +
	"\n" +
	"WeekStatus\x12\x1b\n" +
	"\x17WEEK_STATUS_UNSPECIFIED\x10\x00\x12\x15\n" +
	"\x11WEEK_STATUS_DRAFT\x10\x01\x12\x19\n" +
	"\x15WEEK_STATUS_SUBMITTED\x10\x02\x12\x18\n" +
	"\x14WEEK_STATUS_APPROVED\x10\x03\x12\x18\n" +
	"\x14WEEK_STATUS_REJECTED\x10\x04*m\n" +
	"\x0eReviewDecision\x12\x1f\n" +
	"\x1bREVIEW_DECISION_UNSPECIFIED\x10\x00\x12\x1c\n" +
	"\x18REVIEW_DECISION_APPROVED\x10\x01\x12\x1c\n" +
	"\x18REVIEW_DECISION_REJECTED\x10\x022\x84\x04\n" +
	"\x10TimesheetService\x12U\n" +
	"\fSaveDayDraft\x12!.timesheet.v1.SaveDayDraftRequest\x1a\".timesheet.v1.SaveDayDraftResponse\x12O\n" +
	"\n" +
	"SubmitWeek\x12\x1f.timesheet.v1.SubmitWeekRequest\x1a .timesheet.v1.SubmitWeekResponse\x12O\n" +
	"\n" +
	"ReviewWeek\x12\x1f.timesheet.v1.ReviewWeekRequest\x1a .timesheet.v1.ReviewWeekResponse\x12a\n" +
	"\x10ForceApproveWeek\x12%.timesheet.v1.ForceApproveWeekRequest\x1a&.timesheet.v1.ForceApproveWeekResponse\x12F\n" +
	"\aGetWeek\x12\x1c.timesheet.v1.GetWeekRequest\x1a\x1d.timesheet.v1.GetWeekResponse\x12L\n" +
	"\tListWeeks\x12\x1e.timesheet.v1.ListWeeksRequest\x1a\x1f.timesheet.v1.ListWeeksResponseBZZXgithub.com/ogurasousui/irs-timesheet/internal/adapters/grpc/gen/timesheet/v1;timesheetv1b\x06proto3"

var (
	file_timesheet_v1_timesheet_proto_rawDescOnce sync.Once
	file_timesheet_v1_timesheet_proto_rawDescData []byte
)

func file_timesheet_v1_timesheet_proto_rawDescGZIP() []byte {
	file_timesheet_v1_timesheet_proto_rawDescOnce.Do(func() {
		file_timesheet_v1_timesheet_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_timesheet_v1_timesheet_proto_rawDesc), len(file_timesheet_v1_timesheet_proto_rawDesc)))
	})
	return file_timesheet_v1_timesheet_proto_rawDescData
}

var file_timesheet_v1_timesheet_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_timesheet_v1_timesheet_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_timesheet_v1_timesheet_proto_goTypes = []any{
	(WeekStatus)(0),                  // 0: timesheet.v1.WeekStatus
	(ReviewDecision)(0),              // 1: timesheet.v1.ReviewDecision
	(*DayEntry)(nil),                 // 2: timesheet.v1.DayEntry
	(*Week)(nil),                     // 3: timesheet.v1.Week
	(*SaveDayDraftRequest)(nil),      // 4: timesheet.v1.SaveDayDraftRequest
	(*SaveDayDraftResponse)(nil),     // 5: timesheet.v1.SaveDayDraftResponse
	(*SubmitWeekRequest)(nil),        // 6: timesheet.v1.SubmitWeekRequest
	(*SubmitWeekResponse)(nil),       // 7: timesheet.v1.SubmitWeekResponse
	(*ReviewWeekRequest)(nil),        // 8: timesheet.v1.ReviewWeekRequest
	(*ReviewWeekResponse)(nil),       // 9: timesheet.v1.ReviewWeekResponse
	(*ForceApproveWeekRequest)(nil),  // 10: timesheet.v1.ForceApproveWeekRequest
	(*ForceApproveWeekResponse)(nil), // 11: timesheet.v1.ForceApproveWeekResponse
	(*GetWeekRequest)(nil),           // 12: timesheet.v1.GetWeekRequest
	(*GetWeekResponse)(nil),          // 13: timesheet.v1.GetWeekResponse
	(*ListWeeksRequest)(nil),         // 14: timesheet.v1.ListWeeksRequest
	(*ListWeeksResponse)(nil),        // 15: timesheet.v1.ListWeeksResponse
	(*timestamppb.Timestamp)(nil),    // 16: google.protobuf.Timestamp
}
var file_timesheet_v1_timesheet_proto_depIdxs = []int32{
	0,  // 0: timesheet.v1.Week.status:type_name -> timesheet.v1.WeekStatus
	2,  // 1: timesheet.v1.Week.days:type_name -> timesheet.v1.DayEntry
	16, // 2: timesheet.v1.Week.created_at:type_name -> google.protobuf.Timestamp
	16, // 3: timesheet.v1.Week.updated_at:type_name -> google.protobuf.Timestamp
	16, // 4: timesheet.v1.Week.submitted_at:type_name -> google.protobuf.Timestamp
	16, // 5: timesheet.v1.Week.reviewed_at:type_name -> google.protobuf.Timestamp
	2,  // 6: timesheet.v1.SaveDayDraftRequest.day:type_name -> timesheet.v1.DayEntry
	3,  // 7: timesheet.v1.SaveDayDraftResponse.week:type_name -> timesheet.v1.Week
	3,  // 8: timesheet.v1.SubmitWeekResponse.week:type_name -> timesheet.v1.Week
	1,  // 9: timesheet.v1.ReviewWeekRequest.decision:type_name -> timesheet.v1.ReviewDecision
	3,  // 10: timesheet.v1.ReviewWeekResponse.week:type_name -> timesheet.v1.Week
	3,  // 11: timesheet.v1.ForceApproveWeekResponse.week:type_name -> timesheet.v1.Week
	3,  // 12: timesheet.v1.GetWeekResponse.week:type_name -> timesheet.v1.Week
	0,  // 13: timesheet.v1.ListWeeksRequest.status:type_name -> timesheet.v1.WeekStatus
	3,  // 14: timesheet.v1.ListWeeksResponse.weeks:type_name -> timesheet.v1.Week
	4,  // 15: timesheet.v1.TimesheetService.SaveDayDraft:input_type -> timesheet.v1.SaveDayDraftRequest
	6,  // 16: timesheet.v1.TimesheetService.SubmitWeek:input_type -> timesheet.v1.SubmitWeekRequest
	8,  // 17: timesheet.v1.TimesheetService.ReviewWeek:input_type -> timesheet.v1.ReviewWeekRequest
	10, // 18: timesheet.v1.TimesheetService.ForceApproveWeek:input_type -> timesheet.v1.ForceApproveWeekRequest
	12, // 19: timesheet.v1.TimesheetService.GetWeek:input_type -> timesheet.v1.GetWeekRequest
	14, // 20: timesheet.v1.TimesheetService.ListWeeks:input_type -> timesheet.v1.ListWeeksRequest
	5,  // 21: timesheet.v1.TimesheetService.SaveDayDraft:output_type -> timesheet.v1.SaveDayDraftResponse
	7,  // 22: timesheet.v1.TimesheetService.SubmitWeek:output_type -> timesheet.v1.SubmitWeekResponse
	9,  // 23: timesheet.v1.TimesheetService.ReviewWeek:output_type -> timesheet.v1.ReviewWeekResponse
	11, // 24: timesheet.v1.TimesheetService.ForceApproveWeek:output_type -> timesheet.v1.ForceApproveWeekResponse
	13, // 25: timesheet.v1.TimesheetService.GetWeek:output_type -> timesheet.v1.GetWeekResponse
	15, // 26: timesheet.v1.TimesheetService.ListWeeks:output_type -> timesheet.v1.ListWeeksResponse
	21, // [21:27] is the sub-list for method output_type
	15, // [15:21] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_timesheet_v1_timesheet_proto_init() }
func file_timesheet_v1_timesheet_proto_init() {
	if File_timesheet_v1_timesheet_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_timesheet_v1_timesheet_proto_rawDesc), len(file_timesheet_v1_timesheet_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_timesheet_v1_timesheet_proto_goTypes,
		DependencyIndexes: file_timesheet_v1_timesheet_proto_depIdxs,
		EnumInfos:         file_timesheet_v1_timesheet_proto_enumTypes,
		MessageInfos:      file_timesheet_v1_timesheet_proto_msgTypes,
	}.Build()
	File_timesheet_v1_timesheet_proto = out.File
	file_timesheet_v1_timesheet_proto_goTypes = nil
	file_timesheet_v1_timesheet_proto_depIdxs = nil
}
