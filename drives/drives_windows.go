//go:build windows

package drives

import (
	"golang.org/x/sys/windows"

	"github.com/deotya/unidrive/data"
)

// listSystemDrives walks the logical drive bitmask. Attribute queries are
// best-effort: a volume that refuses GetDiskFreeSpaceEx is still listed,
// just without space figures.
func listSystemDrives() ([]DriveInfo, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}

	var infos []DriveInfo
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}

		letter := data.DriveLetter('A' + byte(i))
		info := DriveInfo{
			Letter: letter,
			Root:   letter.Root(),
		}

		if root, err := windows.UTF16PtrFromString(info.Root.String()); err == nil {
			var free, total, totalFree uint64
			if err := windows.GetDiskFreeSpaceEx(root, &free, &total, &totalFree); err == nil {
				info.TotalSpace = total
				info.FreeSpace = totalFree
			}

			info.Removable = windows.GetDriveType(root) == windows.DRIVE_REMOVABLE
		}

		infos = append(infos, info)
	}

	return infos, nil
}

func systemDriveExists(letter data.DriveLetter) bool {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return false
	}

	return mask&(1<<uint(letter-'A')) != 0
}
