package constant

const (
	FRAME_TICKS = 456 * 154
	TARGET_FPS  = 59.7

	TILE_DATA_START = 0x8000
	TILE_DATA_END   = 0x97ff
	TILE_BYTES      = 16
	TILE_PX         = 8
	TILE_COUNT      = (TILE_DATA_END - TILE_DATA_START + 1) / TILE_BYTES
	TILES_PER_ROW   = 16
	TILE_ROWS       = TILE_COUNT / TILES_PER_ROW
	VIEWER_WIDTH    = TILES_PER_ROW * TILE_PX
	VIEWER_HEIGHT   = TILE_ROWS * TILE_PX

	WINDOW_TITLE  = "baredmg"
	WINDOW_SCALE  = 3
	WINDOW_WIDTH  = VIEWER_WIDTH * WINDOW_SCALE
	WINDOW_HEIGHT = VIEWER_HEIGHT * WINDOW_SCALE

	COLOR_WHITE      = 0xff
	COLOR_LIGHT_GRAY = 0xaa
	COLOR_DARK_GRAY  = 0x55
	COLOR_BLACK      = 0x00
)
