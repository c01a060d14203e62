package predictor

// classNames is the fixed enumeration of supported plant/disease pairs.
// Index position is the classification key; do not reorder.
var classNames = []string{
	"Apple__Apple_scab", "Apple__Black_rot", "Apple__Cedar_apple_rust", "Apple__healthy",
	"Blueberry__healthy", "Cherry__Powdery_mildew", "Cherry__healthy",
	"Corn__Cercospora_leaf_spot", "Corn__Common_rust", "Corn__Northern_Leaf_Blight",
	"Corn__healthy", "Grape__Black_rot", "Grape__Esca", "Grape__Leaf_blight",
	"Grape__healthy", "Orange__Huanglongbing", "Peach__Bacterial_spot", "Peach__healthy",
	"Pepper__Bacterial_spot", "Pepper__healthy", "Potato__Early_blight", "Potato__Late_blight",
	"Potato__healthy", "Raspberry__healthy", "Soybean__healthy", "Squash__Powdery_mildew",
	"Strawberry__Leaf_scorch", "Strawberry__healthy", "Tomato__Bacterial_spot",
	"Tomato__Early_blight", "Tomato__Late_blight", "Tomato__Leaf_Mold",
	"Tomato__Septoria_leaf_spot", "Tomato__Spider_mites", "Tomato__Target_Spot",
	"Tomato__Yellow_Leaf_Curl_Virus", "Tomato__Mosaic_virus", "Tomato__healthy",
}

const classCount = 38
