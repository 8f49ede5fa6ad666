package metric

const maxrssInKilobytes = false
