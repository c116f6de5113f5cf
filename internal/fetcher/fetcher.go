package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Fetch returns the path of a transcript file for url. Published subtitles
// win; when none exist the audio is downloaded and transcribed locally.
// The returned file lives in a work dir under paths.temp; the caller owns
// the dir and removes it once the transcript is digested.
func (f *implFetcher) Fetch(ctx context.Context, url string) (string, error) {
	workDir, err := os.MkdirTemp(f.cfg.Paths.Temp, "fetch-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}

	path, err := f.fetch(ctx, url, workDir)
	if err != nil {
		f.cleanupWorkDir(ctx, workDir)
		return "", err
	}
	return path, nil
}

func (f *implFetcher) fetch(ctx context.Context, url, workDir string) (string, error) {
	f.logger.Info(ctx, "Fetching transcript for: %s", url)

	if path, err := f.downloadSubtitles(ctx, url, workDir); err != nil {
		f.logger.Warn(ctx, "Subtitle download failed, falling back to audio: %v", err)
	} else if path != "" {
		f.logger.Info(ctx, "Using published subtitles: %s", path)
		return path, nil
	} else {
		f.logger.Info(ctx, "No published subtitles, falling back to audio transcription")
	}

	audioPath, err := f.downloadAudio(ctx, url, workDir)
	if err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	srtPath, err := f.transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	return srtPath, nil
}

// cleanupWorkDir removes a fetch work dir, logs warning if fails
func (f *implFetcher) cleanupWorkDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		f.logger.Warn(ctx, "Failed to cleanup work dir %s: %v", dir, err)
	} else {
		f.logger.Debug(ctx, "Cleaned up work dir: %s", dir)
	}
}

// downloadSubtitles asks yt-dlp for manual or auto subtitles converted to
// SRT. Returns "" without error when the video has none.
func (f *implFetcher) downloadSubtitles(ctx context.Context, url, workDir string) (string, error) {
	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", "en.*,zh.*",
		"--convert-subs", "srt",
		"-o", filepath.Join(workDir, "subtitle.%(ext)s"),
		url,
	}

	if _, err := f.executor.Execute(ctx, f.cfg.Tools.YtDlpPath, args...); err != nil {
		return "", fmt.Errorf("yt-dlp subtitles: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(workDir, "subtitle*.srt"))
	if err != nil {
		return "", fmt.Errorf("glob subtitles: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	return matches[0], nil
}

// downloadAudio downloads the media's audio track as 16kHz mono WAV, the
// input format whisper.cpp expects.
func (f *implFetcher) downloadAudio(ctx context.Context, url, workDir string) (string, error) {
	args := []string{
		"-x",
		"--audio-format", "wav",
		"--postprocessor-args", "ffmpeg:-ar 16000 -ac 1",
		"-o", filepath.Join(workDir, "audio.%(ext)s"),
		url,
	}

	if _, err := f.executor.Execute(ctx, f.cfg.Tools.YtDlpPath, args...); err != nil {
		return "", fmt.Errorf("yt-dlp audio: %w", err)
	}

	audioPath := filepath.Join(workDir, "audio.wav")
	f.logger.Info(ctx, "Audio downloaded: %s", audioPath)
	return audioPath, nil
}

// transcribe converts audio to an SRT file with whisper.cpp.
func (f *implFetcher) transcribe(ctx context.Context, audioPath string) (string, error) {
	if f.cfg.Tools.WhisperBinary == "" || f.cfg.Tools.WhisperModel == "" {
		return "", fmt.Errorf("tools.whisper_binary and tools.whisper_model are required for audio transcription")
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	f.logger.Info(ctx, "Transcribing audio: %s", audioPath)

	args := []string{
		"-m", f.cfg.Tools.WhisperModel,
		"-f", audioPath,
		"-osrt",
		"-l", "auto",
		"--output-file", outputPrefix,
	}

	if _, err := f.executor.Execute(ctx, f.cfg.Tools.WhisperBinary, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	f.logger.Info(ctx, "Transcription completed: %s", srtPath)
	return srtPath, nil
}
