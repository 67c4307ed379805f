package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModePresetPicker
	ModeFileInput
	ModeDoseInput
	ModeSegmentsInput
	ModeConfirm
	ModeDescription
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpOpen
	FileOpSavePNG
	FileOpSaveSVG
	FileOpSaveXLSX
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmReset
	ConfirmOverwriteFile
	ConfirmDiscardAndOpen
	ConfirmExternalReload
)

type ActionType int

const (
	ActionDragPoints ActionType = iota
	ActionNormalize
	ActionReplaceSeries
	ActionSetSegments
	ActionSetDose
	ActionReset
)

const (
	// Minutes between adjacent curve points. The wire format does not
	// enforce this, but every generated index is a multiple of it.
	stepMinutes = 5

	minSegments = 2
	maxSegments = 288

	defaultSegments = 49 // four hours at five-minute steps

	// A dose may only be attached to a curve whose fractions already sum
	// to 1 within this band.
	doseTotalMin = 0.999
	doseTotalMax = 1.001

	normalizeEpsilon = 1e-9
)
