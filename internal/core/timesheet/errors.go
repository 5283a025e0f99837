package timesheet

import "errors"

var (
	// ErrWeekNotFound は週が存在しない場合に返却されます。
	ErrWeekNotFound = errors.New("timesheet: week not found")
	// ErrPermissionDenied は役割・所有者規則に違反した場合に返却されます。
	ErrPermissionDenied = errors.New("timesheet: permission denied")
	// ErrStateConflict は現在の状態から許可されない遷移・編集を試みた場合に返却されます。
	ErrStateConflict = errors.New("timesheet: state conflict")
	// ErrNoHoursEntered は時間の入っていない週を提出しようとした場合に返却されます。
	ErrNoHoursEntered = errors.New("timesheet: no hours entered")
	// ErrCommentRequired は却下コメントが空の場合に返却されます。
	ErrCommentRequired = errors.New("timesheet: rejection comment required")
	// ErrInvalidDaySlot は day スロット識別子が不正な場合に返却されます。
	ErrInvalidDaySlot = errors.New("timesheet: invalid day slot")
	// ErrInvalidHours は負の時間が指定された場合に返却されます。
	ErrInvalidHours = errors.New("timesheet: invalid hours")
	// ErrInvalidDecision はレビュー結果が Approved/Rejected 以外の場合に返却されます。
	ErrInvalidDecision = errors.New("timesheet: invalid review decision")
	// ErrInvalidID は週IDが不正な場合に返却されます。
	ErrInvalidID = errors.New("timesheet: invalid id")
	// ErrInvalidStatus はステータスフィルタが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("timesheet: invalid status")
)
