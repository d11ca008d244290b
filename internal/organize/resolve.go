package organize

import (
	"path/filepath"

	"tidy/internal/fileutil"
)

// LargeFilesDir is the subfolder large files are nested into, inside their
// category folder.
const LargeFilesDir = "LargeFiles"

// ResolveDestination computes the collision-free destination for fileName
// inside baseDir/category. Files whose size in whole megabytes is at or
// above thresholdMB are nested one level deeper under LargeFilesDir; a
// thresholdMB of 0 disables the rule. The size check runs after and
// independently of category assignment, so large files stay inside their
// category tree.
//
// Resolution is pure computation over live filesystem existence checks;
// directory creation belongs to the mover.
func ResolveDestination(baseDir, category, fileName string, sizeBytes, thresholdMB int64) string {
	dir := filepath.Join(baseDir, category)
	if isLarge(sizeBytes, thresholdMB) {
		dir = filepath.Join(dir, LargeFilesDir)
	}
	return fileutil.ResolveCollision(filepath.Join(dir, fileName))
}

func isLarge(sizeBytes, thresholdMB int64) bool {
	return thresholdMB > 0 && sizeBytes/(1024*1024) >= thresholdMB
}
