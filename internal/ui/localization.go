package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeyEdit             = "edit"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyChooseFiles      = "choose_files"
	KeyChooseFolder     = "choose_folder"
	KeyAddFiles         = "add_files"
	KeyDeleteFiles      = "delete_files"
	KeyMoveTop          = "move_top"
	KeyMoveUp           = "move_up"
	KeyMoveDown         = "move_down"
	KeyMoveBottom       = "move_bottom"
	KeyNoFilesSelected  = "no_files_selected"
	KeyFilesSelected    = "files_selected"
	KeySelectedName     = "selected_name"
	KeyOptimizeSize     = "optimize_size"
	KeyOutputDirectory  = "output_directory"
	KeyCustomName       = "custom_name"
	KeyCustomNameHint   = "custom_name_hint"
	KeyConvertToPDF     = "convert_to_pdf"
	KeyJoinPDFs         = "join_pdfs"
	KeyBrowse           = "browse"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyMaxDimension     = "max_dimension"
	KeyJPEGQuality      = "jpeg_quality"
	KeyRevealOnComplete = "reveal_on_complete"
	KeySettingsSaved    = "settings_saved"
	KeySuccess          = "success"
	KeyError            = "error"
	KeyPDFCreatedAt     = "pdf_created_at"
	KeyPDFMergedAt      = "pdf_merged_at"
	KeyNoFiles          = "no_files"
	KeyNoOutputDir      = "no_output_dir"
	KeyFileExists       = "file_exists"
	KeyTooFewPDFs       = "too_few_pdfs"
	KeyUnsupportedFile  = "unsupported_file"
	KeySomethingWrong   = "something_wrong"
	KeyFilesSkipped     = "files_skipped"
	KeyErrorOpeningFile = "error_opening_file"
	KeySelectAll        = "select_all"
	KeyClearSelection   = "clear_selection"
	KeyOpenPDF          = "open_pdf"
	KeyClose            = "close"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "PDF Maker",
		KeyFile:             "File",
		KeyEdit:             "Edit",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyChooseFiles:      "Choose files…",
		KeyChooseFolder:     "Choose folder…",
		KeyAddFiles:         "Add files",
		KeyDeleteFiles:      "Delete files",
		KeyMoveTop:          "Move to top",
		KeyMoveUp:           "Move up",
		KeyMoveDown:         "Move down",
		KeyMoveBottom:       "Move to bottom",
		KeyNoFilesSelected:  "No Files Selected",
		KeyFilesSelected:    "%d Files Selected",
		KeySelectedName:     "Selected: %s",
		KeyOptimizeSize:     "Optimize file size",
		KeyOutputDirectory:  "Output directory",
		KeyCustomName:       "Custom name",
		KeyCustomNameHint:   "File name without .pdf",
		KeyConvertToPDF:     "Convert to PDF",
		KeyJoinPDFs:         "Join PDFs",
		KeyBrowse:           "Browse…",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyMaxDimension:     "Max image side (px)",
		KeyJPEGQuality:      "JPEG quality",
		KeyRevealOnComplete: "Reveal output when done",
		KeySettingsSaved:    "Settings saved successfully!",
		KeySuccess:          "Success",
		KeyError:            "Error",
		KeyPDFCreatedAt:     "PDF created at: %s",
		KeyPDFMergedAt:      "PDF merged at: %s",
		KeyNoFiles:          "No files were selected!",
		KeyNoOutputDir:      "Output directory was not specified!",
		KeyFileExists:       "File already exists!",
		KeyTooFewPDFs:       "Select more than one PDF file!",
		KeyUnsupportedFile:  "Unsupported file type!",
		KeySomethingWrong:   "Something went wrong!",
		KeyFilesSkipped:     "%d files were skipped",
		KeyErrorOpeningFile: "Error opening file",
		KeySelectAll:        "Select all",
		KeyClearSelection:   "Clear selection",
		KeyOpenPDF:          "Open PDF",
		KeyClose:            "Close",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "PDF Maker",
		KeyFile:             "Файл",
		KeyEdit:             "Правка",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyChooseFiles:      "Выбрать файлы…",
		KeyChooseFolder:     "Выбрать папку…",
		KeyAddFiles:         "Добавить файлы",
		KeyDeleteFiles:      "Удалить файлы",
		KeyMoveTop:          "В начало",
		KeyMoveUp:           "Вверх",
		KeyMoveDown:         "Вниз",
		KeyMoveBottom:       "В конец",
		KeyNoFilesSelected:  "Файлы не выбраны",
		KeyFilesSelected:    "Выбрано файлов: %d",
		KeySelectedName:     "Выбран: %s",
		KeyOptimizeSize:     "Уменьшить размер файла",
		KeyOutputDirectory:  "Папка сохранения",
		KeyCustomName:       "Своё имя",
		KeyCustomNameHint:   "Имя файла без .pdf",
		KeyConvertToPDF:     "Создать PDF",
		KeyJoinPDFs:         "Объединить PDF",
		KeyBrowse:           "Обзор…",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyMaxDimension:     "Макс. сторона изображения (px)",
		KeyJPEGQuality:      "Качество JPEG",
		KeyRevealOnComplete: "Показать результат по завершении",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeySuccess:          "Готово",
		KeyError:            "Ошибка",
		KeyPDFCreatedAt:     "PDF создан в: %s",
		KeyPDFMergedAt:      "PDF объединён в: %s",
		KeyNoFiles:          "Файлы не выбраны!",
		KeyNoOutputDir:      "Папка сохранения не указана!",
		KeyFileExists:       "Файл уже существует!",
		KeyTooFewPDFs:       "Выберите больше одного PDF файла!",
		KeyUnsupportedFile:  "Неподдерживаемый тип файла!",
		KeySomethingWrong:   "Что-то пошло не так!",
		KeyFilesSkipped:     "Пропущено файлов: %d",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeySelectAll:        "Выделить все",
		KeyClearSelection:   "Снять выделение",
		KeyOpenPDF:          "Открыть PDF",
		KeyClose:            "Закрыть",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "PDF Maker",
		KeyFile:             "Arquivo",
		KeyEdit:             "Editar",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyChooseFiles:      "Escolher arquivos…",
		KeyChooseFolder:     "Escolher pasta…",
		KeyAddFiles:         "Adicionar arquivos",
		KeyDeleteFiles:      "Remover arquivos",
		KeyMoveTop:          "Mover para o topo",
		KeyMoveUp:           "Mover para cima",
		KeyMoveDown:         "Mover para baixo",
		KeyMoveBottom:       "Mover para o fim",
		KeyNoFilesSelected:  "Nenhum arquivo selecionado",
		KeyFilesSelected:    "%d arquivos selecionados",
		KeySelectedName:     "Selecionado: %s",
		KeyOptimizeSize:     "Otimizar tamanho do arquivo",
		KeyOutputDirectory:  "Diretório de saída",
		KeyCustomName:       "Nome personalizado",
		KeyCustomNameHint:   "Nome do arquivo sem .pdf",
		KeyConvertToPDF:     "Converter para PDF",
		KeyJoinPDFs:         "Juntar PDFs",
		KeyBrowse:           "Navegar…",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyMaxDimension:     "Lado máximo da imagem (px)",
		KeyJPEGQuality:      "Qualidade JPEG",
		KeyRevealOnComplete: "Mostrar resultado ao terminar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeySuccess:          "Sucesso",
		KeyError:            "Erro",
		KeyPDFCreatedAt:     "PDF criado em: %s",
		KeyPDFMergedAt:      "PDF mesclado em: %s",
		KeyNoFiles:          "Nenhum arquivo foi selecionado!",
		KeyNoOutputDir:      "Diretório de saída não especificado!",
		KeyFileExists:       "O arquivo já existe!",
		KeyTooFewPDFs:       "Selecione mais de um arquivo PDF!",
		KeyUnsupportedFile:  "Tipo de arquivo não suportado!",
		KeySomethingWrong:   "Algo deu errado!",
		KeyFilesSkipped:     "%d arquivos foram ignorados",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeySelectAll:        "Selecionar tudo",
		KeyClearSelection:   "Limpar seleção",
		KeyOpenPDF:          "Abrir PDF",
		KeyClose:            "Fechar",
	}
}
