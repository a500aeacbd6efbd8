package ffmpeg

// Export formats accepted by ExportSpec.Format.
const (
	FormatMP4  = "mp4"
	FormatWebM = "webm"
	FormatGIF  = "gif"
)

// QualityMax selects the larger, slower encode for an export format.
const QualityMax = "max"

func h264(crf int, preset string) []Option {
	return []Option{VideoCodec("libx264"), CRF(crf), Preset(preset), PixelFormat("yuv420p")}
}

func vp9(crf int) []Option {
	// -b:v 0 puts libvpx-vp9 in constant-quality mode.
	return []Option{VideoCodec("libvpx-vp9"), CRF(crf), ExtraArgs("-b:v", "0", "-row-mt", "1"), PixelFormat("yuv420p")}
}

// Preset264Fast is a quick h264 encode for previews and tests.
func Preset264Fast() []Option { return h264(23, "ultrafast") }

// PresetExportHQ is the default h264 export.
func PresetExportHQ() []Option { return h264(21, "medium") }

// PresetExportWebM is the default VP9 export.
func PresetExportWebM() []Option { return vp9(24) }

// PresetExportAAC is stereo AAC for mp4 exports.
func PresetExportAAC() []Option {
	return []Option{AudioCodec("aac"), AudioBitrate("192k"), AudioChannels(2)}
}

// PresetExportOpus is stereo Opus for webm exports.
func PresetExportOpus() []Option {
	return []Option{AudioCodec("libopus"), AudioBitrate("128k"), AudioChannels(2)}
}

// PresetExportGIF drops audio and caps the frame rate at 15.
func PresetExportGIF() []Option { return []Option{FPS(15), NoAudio} }

// PresetRemux copies every stream without re-encoding.
func PresetRemux() []Option { return []Option{CopyAll, MapAll} }

// ExportPresetForFormat returns the video and audio options and the file
// extension for an export format. Unknown formats export as mp4.
func ExportPresetForFormat(format, quality string) (video, audio []Option, ext string) {
	best := quality == QualityMax
	switch format {
	case FormatWebM:
		if best {
			return vp9(18), PresetExportOpus(), ".webm"
		}
		return PresetExportWebM(), PresetExportOpus(), ".webm"
	case FormatGIF:
		return PresetExportGIF(), nil, ".gif"
	default:
		if best {
			return h264(17, "slow"), PresetExportAAC(), ".mp4"
		}
		return PresetExportHQ(), PresetExportAAC(), ".mp4"
	}
}

// Flatten concatenates option groups.
func Flatten(groups ...[]Option) []Option {
	var all []Option
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
