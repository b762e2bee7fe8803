package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/pdf-maker/internal/convert"
	"github.com/ytget/pdf-maker/internal/model"
	"github.com/ytget/pdf-maker/internal/selection"
)

// fakeConverter records what the window asks for without touching files
type fakeConverter struct {
	maxDimension int
	jpegQuality  int
	validated    []convert.Request
	converted    int
	onUpdate     func(*model.ConversionJob)
}

func (f *fakeConverter) SetUpdateCallback(cb func(*model.ConversionJob)) { f.onUpdate = cb }
func (f *fakeConverter) SetMaxDimension(pixels int)                      { f.maxDimension = pixels }
func (f *fakeConverter) SetJPEGQuality(quality int)                      { f.jpegQuality = quality }

func (f *fakeConverter) Validate(req convert.Request) (string, error) {
	f.validated = append(f.validated, req)
	if len(req.Inputs) == 0 {
		return "", convert.ErrNoFiles
	}
	if req.OutputDir == "" {
		return "", convert.ErrNoOutputDir
	}
	return req.OutputDir + "/out.pdf", nil
}

func (f *fakeConverter) Convert(_ context.Context, _ convert.Request) (*model.ConversionJob, error) {
	f.converted++
	return nil, convert.ErrWriteFailed
}

func newTestRootUI(t *testing.T) (*RootUI, *fakeConverter) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("test")
	converter := &fakeConverter{}
	return NewRootUI(window, app, converter), converter
}

func TestNewRootUI_AppliesSettings(t *testing.T) {
	ui, converter := newTestRootUI(t)

	assert.Equal(t, ui.settings.GetMaxDimension(), converter.maxDimension)
	assert.Equal(t, ui.settings.GetJPEGQuality(), converter.jpegQuality)
	assert.NotNil(t, converter.onUpdate)
	assert.Equal(t, model.StateIdle, ui.state)
	assert.Equal(t, "No Files Selected", ui.summaryLabel.Text)
	assert.False(t, ui.progressBar.Visible())
}

func TestRootUI_ChoosePDFsSwitchesControls(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.choosePaths([]string{"/docs/a.pdf", "/docs/b.pdf"})

	assert.Equal(t, model.StateFilesChosen, ui.state)
	assert.Equal(t, "Join PDFs", ui.convertBtn.Text)
	assert.Equal(t, "2 Files Selected", ui.summaryLabel.Text)
	assert.False(t, ui.optimizeCheck.Visible())

	ui.choosePaths([]string{"/scans/a.png"})
	assert.Equal(t, "Convert to PDF", ui.convertBtn.Text)
	assert.True(t, ui.optimizeCheck.Visible())
}

func TestRootUI_AddKeepsFirstClass(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.addPaths([]string{"/scans/a.png"})
	ui.addPaths([]string{"/docs/x.pdf", "/scans/b.jpg"})

	assert.Equal(t, []string{"a.png", "b.jpg"}, ui.store.Labels())
}

func TestRootUI_MoveAndReconcileIntoRequest(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.choosePaths([]string{"/s/1.png", "/s/2.png", "/s/3.png"})

	ui.onRowToggled(2, true)
	ui.onMove(selection.Up, true)

	assert.Equal(t, []string{"3.png", "1.png", "2.png"}, ui.store.Labels())
	assert.True(t, ui.store.IsSelected(0))

	ui.optimizeCheck.SetChecked(true)
	req := ui.buildRequest()
	assert.Equal(t, []string{"/s/3.png", "/s/1.png", "/s/2.png"}, req.Inputs)
	assert.True(t, req.Optimize)
}

func TestRootUI_DeleteHighlighted(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.choosePaths([]string{"/s/1.png", "/s/2.png", "/s/3.png"})

	ui.onRowToggled(0, true)
	ui.onRowToggled(2, true)
	ui.onDeleteFiles()

	assert.Equal(t, []string{"2.png"}, ui.store.Labels())
	assert.Equal(t, "Selected: 2.png", ui.summaryLabel.Text)
}

func TestRootUI_PreconditionFailureDoesNotConvert(t *testing.T) {
	ui, converter := newTestRootUI(t)

	ui.onConvertClick()

	require.Len(t, converter.validated, 1)
	assert.Zero(t, converter.converted)
	assert.Equal(t, model.StateIdle, ui.state)
	assert.False(t, ui.convertBtn.Disabled())
}

func TestRootUI_CustomNameEntryFollowsCheck(t *testing.T) {
	ui, _ := newTestRootUI(t)

	assert.True(t, ui.customEntry.Disabled())
	ui.customCheck.SetChecked(true)
	assert.False(t, ui.customEntry.Disabled())
	ui.customCheck.SetChecked(false)
	assert.True(t, ui.customEntry.Disabled())
}

func TestFileRow_TapTogglesHighlight(t *testing.T) {
	var toggled []bool
	row := NewFileRow(func(_ int, selected bool) { toggled = append(toggled, selected) })
	row.Update(4, selection.Entry{ID: "file-1", Label: "scan.png"}, model.KindImage, false)

	assert.Equal(t, "5.", row.indexLabel.Text)
	assert.Equal(t, "scan.png", row.nameLabel.Text)

	test.Tap(row)
	test.Tap(row)
	assert.Equal(t, []bool{true, false}, toggled)

	// Programmatic updates do not report a toggle
	row.Update(4, selection.Entry{ID: "file-1", Label: "scan.png"}, model.KindImage, true)
	assert.Len(t, toggled, 2)
}

func TestRootUI_SelectAllAndClear(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.choosePaths([]string{"/s/1.png", "/s/2.png", "/s/3.png"})

	ui.onSelectAll()
	assert.Equal(t, []int{0, 1, 2}, ui.store.SelectedRows())

	ui.onClearSelection()
	assert.Empty(t, ui.store.SelectedRows())

	// Choosing again starts without highlights
	ui.onSelectAll()
	ui.choosePaths([]string{"/s/4.png"})
	assert.Empty(t, ui.store.SelectedRows())
}

func TestRootUI_FailureShowsErrorIcon(t *testing.T) {
	content := errorContent("Something went wrong!")
	require.Len(t, content.Objects, 2)

	icon, ok := content.Objects[0].(*widget.Icon)
	require.True(t, ok)
	assert.Equal(t, theme.ErrorIcon().Name(), icon.Resource.Name())

	label, ok := content.Objects[1].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "Something went wrong!", label.Text)

	ui, _ := newTestRootUI(t)
	ui.showResult(nil, convert.ErrNoOutputDir)
	assert.NotNil(t, ui.window.Canvas().Overlays().Top())
}

func TestRootUI_SuccessOpensPDFOnRequest(t *testing.T) {
	ui, _ := newTestRootUI(t)
	var opened []string
	ui.openFile = func(path string) error {
		opened = append(opened, path)
		return nil
	}

	ui.choosePaths([]string{"/s/1.png"})
	ui.setBusy(true)
	ui.setBusy(false)
	ui.showResult(&model.ConversionJob{Kind: model.KindImage, OutputPath: "/out/a.pdf"}, nil)
	assert.NotNil(t, ui.window.Canvas().Overlays().Top())
	assert.Equal(t, model.StateFilesChosen, ui.state)

	ui.onSuccessClosed("/out/a.pdf", false)
	assert.Empty(t, opened)

	ui.onSuccessClosed("/out/a.pdf", true)
	assert.Equal(t, []string{"/out/a.pdf"}, opened)

	// A failing opener is reported, not fatal
	ui.openFile = func(string) error { return errors.New("no viewer") }
	ui.onSuccessClosed("/out/a.pdf", true)
}

func TestRootUI_FinishedJobHidesProgress(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.choosePaths([]string{"/s/1.png"})
	ui.setBusy(true)

	job := &model.ConversionJob{Status: model.StateConverting}
	job.SetProgress(50)
	ui.onJobUpdate(job)
	assert.True(t, ui.progressBar.Visible())
	assert.InDelta(t, 0.5, ui.progressBar.Value, 0.001)

	job.Status = model.StateSucceeded
	ui.onJobUpdate(job)
	assert.False(t, ui.progressBar.Visible())
}
